// Package registry reads packages from a version-addressed directory tree.
//
// A package lives at <root>/<publisher>/<project>/versions/<version>/ and holds its
// compiled bundle <project>.jar plus, optionally, its own project file.
package registry

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/kiln/internal/adapters/config"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// VersionsDirName separates a project from its published versions.
	VersionsDirName = "versions"
	// ArtifactExt is the extension of a package's compiled bundle.
	ArtifactExt = ".jar"
	// DefaultManifestCacheSize bounds the number of memoised package manifests.
	DefaultManifestCacheSize = 512
)

var _ ports.PackageRegistry = (*Registry)(nil)

// manifestEntry lets the cache remember packages that have no manifest.
type manifestEntry struct {
	config *domain.ProjectConfig
}

// Registry implements ports.PackageRegistry on the local filesystem.
type Registry struct {
	manifests *lru.Cache[string, manifestEntry]
}

// New creates a Registry memoising up to size manifests.
func New(size int) (*Registry, error) {
	cache, err := lru.New[string, manifestEntry](size)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create manifest cache")
	}
	return &Registry{manifests: cache}, nil
}

// PackageDir returns the directory holding one version of a package.
func PackageDir(registryRoot string, sig domain.PackageSignature) string {
	return filepath.Join(registryRoot, sig.Publisher.String(), sig.Project.String(), VersionsDirName, sig.Version)
}

// Locate returns the compiled bundle of the package. Each path segment is checked in
// turn so the error names the first one that is missing.
func (r *Registry) Locate(registryRoot string, sig domain.PackageSignature) (string, error) {
	segments := []struct {
		what string
		path string
	}{
		{"publisher", filepath.Join(registryRoot, sig.Publisher.String())},
		{"project", filepath.Join(registryRoot, sig.Publisher.String(), sig.Project.String())},
		{"version", PackageDir(registryRoot, sig)},
		{"artifact", filepath.Join(PackageDir(registryRoot, sig), sig.Project.String()+ArtifactExt)},
	}

	for _, seg := range segments {
		_, err := os.Stat(seg.path)
		if err == nil {
			continue
		}
		if errors.Is(err, fs.ErrNotExist) {
			notFound := zerr.With(domain.ErrPackageNotFound, "package", sig.String())
			notFound = zerr.With(notFound, "missing", seg.what)
			notFound = zerr.With(notFound, "path", seg.path)
			return "", zerr.With(notFound, "registry", registryRoot)
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", seg.path)
	}

	return segments[len(segments)-1].path, nil
}

// Manifest returns the package's own project configuration, or nil when it ships none.
func (r *Registry) Manifest(registryRoot string, sig domain.PackageSignature) (*domain.ProjectConfig, error) {
	key := registryRoot + "\x00" + sig.String()
	if entry, ok := r.manifests.Get(key); ok {
		return entry.config, nil
	}

	path := filepath.Join(PackageDir(registryRoot, sig), domain.ProjectFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the registry root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.manifests.Add(key, manifestEntry{})
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	cfg, err := config.ParseManifest(data)
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "package", sig.String())
		return nil, zerr.With(wrapped, "path", path)
	}

	r.manifests.Add(key, manifestEntry{config: cfg})
	return cfg, nil
}
