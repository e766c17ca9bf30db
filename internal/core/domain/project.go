package domain

import (
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// ProjectConfig is the typed project configuration. A copy of it is kept in the
// build cache as the snapshot of the last build.
type ProjectConfig struct {
	Publisher     string             `json:"publisher"`
	Project       string             `json:"project"`
	Version       string             `json:"version"`
	TargetVersion string             `json:"targetVersion,omitempty"`
	OutputFolder  string             `json:"outputFolder"`
	SourceFolders []string           `json:"sourceFolders,omitempty"`
	Dependencies  []PackageSignature `json:"dependencies,omitempty"`
	MaxErrors     int                `json:"maxErrors,omitempty"`
	MaxWarnings   int                `json:"maxWarnings,omitempty"`
}

// Label identifies the project in provenance chains.
func (c *ProjectConfig) Label() string {
	return c.Publisher + "/" + c.Project + "@" + c.Version
}

// Sources returns the configured source folders, or the default folder.
func (c *ProjectConfig) Sources() []string {
	if len(c.SourceFolders) == 0 {
		return []string{DefaultSourceFolder}
	}
	return c.SourceFolders
}

// Clone returns a deep copy suitable for storing as a snapshot.
func (c *ProjectConfig) Clone() *ProjectConfig {
	if c == nil {
		return nil
	}
	out := *c
	out.SourceFolders = append([]string(nil), c.SourceFolders...)
	out.Dependencies = append([]PackageSignature(nil), c.Dependencies...)
	return &out
}

// RequiresFullRebuild reports whether moving from the previous snapshot to c
// invalidates every compiled unit.
//
// Identity fields and diagnostic limits never do. A target version change does
// unless both spellings normalize to the same runtime. Removing a dependency or
// changing the version of an existing one does; adding a new one does not.
func (c *ProjectConfig) RequiresFullRebuild(previous *ProjectConfig) bool {
	if previous == nil {
		return false
	}

	if NormalizeTargetVersion(c.TargetVersion) != NormalizeTargetVersion(previous.TargetVersion) {
		return true
	}

	current := make(map[string]string, len(c.Dependencies))
	for _, dep := range c.Dependencies {
		current[dep.Key()] = dep.Version
	}

	for _, dep := range previous.Dependencies {
		version, ok := current[dep.Key()]
		if !ok || version != dep.Version {
			return true
		}
	}

	return false
}

// NormalizeTargetVersion folds the spellings of one runtime version together:
// "1.7", "7", "7.0", "JDK7" and "java-7" all normalize to "7".
func NormalizeTargetVersion(v string) string {
	s := strings.ToLower(strings.TrimSpace(v))
	for _, prefix := range []string{"openjdk", "jdk", "jre", "java"} {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimLeft(s[len(prefix):], "-_ ")
			break
		}
	}
	if strings.HasPrefix(s, "1.") && len(s) > 2 {
		s = s[2:]
	}
	for strings.HasSuffix(s, ".0") {
		s = strings.TrimSuffix(s, ".0")
	}
	return s
}

// MajorVersion extracts the runtime major version from a version token.
// It returns ErrUnrecognizedVersion if the token does not start with a positive number.
func MajorVersion(v string) (int, error) {
	s := NormalizeTargetVersion(v)
	end := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if end == -1 {
		end = len(s)
	}
	major, err := strconv.Atoi(s[:end])
	if err != nil || major <= 0 {
		return 0, zerr.With(ErrUnrecognizedVersion, "version", v)
	}
	if end < len(s) && !strings.ContainsRune("._-u+", rune(s[end])) {
		return 0, zerr.With(ErrUnrecognizedVersion, "version", v)
	}
	return major, nil
}

// LegacyTargetMajor is the newest runtime major version that still ships its
// class library as a boot classpath archive.
const LegacyTargetMajor = 8

// IsLegacyTarget reports whether v names a runtime compiled against a boot
// classpath archive rather than the module system.
func IsLegacyTarget(v string) (bool, error) {
	major, err := MajorVersion(v)
	if err != nil {
		return false, err
	}
	return major <= LegacyTargetMajor, nil
}

// ValidateOutputFolder rejects output folders that are absolute, name the project
// root itself or point outside of it.
func ValidateOutputFolder(folder string) error {
	slashed := filepath.ToSlash(strings.TrimSpace(folder))
	clean := path.Clean(slashed)
	switch {
	case filepath.IsAbs(folder), path.IsAbs(slashed), filepath.VolumeName(folder) != "":
		return zerr.With(ErrUnsafeOutputFolder, "output_folder", folder)
	case clean == ".", clean == "..", strings.HasPrefix(clean, "../"):
		return zerr.With(ErrUnsafeOutputFolder, "output_folder", folder)
	}
	return nil
}

// PackageSignature identifies one entry in the package registry.
type PackageSignature struct {
	Publisher InternedString
	Project   InternedString
	Version   string
}

// NewPackageSignature creates a PackageSignature from its parts.
func NewPackageSignature(publisher, project, version string) PackageSignature {
	return PackageSignature{
		Publisher: NewInternedString(publisher),
		Project:   NewInternedString(project),
		Version:   version,
	}
}

// ParsePackageSignature parses the "publisher/project@version" form.
func ParsePackageSignature(s string) (PackageSignature, error) {
	s = strings.TrimSpace(s)
	name, version, ok := strings.Cut(s, "@")
	if !ok {
		return PackageSignature{}, zerr.With(ErrInvalidPackageSignature, "signature", s)
	}
	publisher, project, ok := strings.Cut(name, "/")
	if !ok || publisher == "" || project == "" || version == "" ||
		strings.ContainsAny(project, "/@") || strings.Contains(version, "@") {
		return PackageSignature{}, zerr.With(ErrInvalidPackageSignature, "signature", s)
	}
	return NewPackageSignature(publisher, project, version), nil
}

// Key returns the "publisher/project" pair that must resolve to a single version.
func (p PackageSignature) Key() string {
	return p.Publisher.String() + "/" + p.Project.String()
}

// String returns the "publisher/project@version" form.
func (p PackageSignature) String() string {
	return p.Key() + "@" + p.Version
}

// MarshalText implements encoding.TextMarshaler.
func (p PackageSignature) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PackageSignature) UnmarshalText(text []byte) error {
	parsed, err := ParsePackageSignature(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
