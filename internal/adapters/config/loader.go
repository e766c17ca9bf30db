// Package config loads kiln.yaml project configurations.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// FindRoot walks up from cwd to the nearest directory containing a project file.
func (l *Loader) FindRoot(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, domain.ProjectFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
		}
		dir = parent
	}
}

// Load reads and validates the project configuration in root.
func (l *Loader) Load(root string) (*domain.ProjectConfig, error) {
	configPath := filepath.Join(root, domain.ProjectFileName)

	data, err := os.ReadFile(configPath) //nolint:gosec // path is derived from the project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", configPath)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	file, err := parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if file.Java == nil {
		return nil, zerr.With(domain.ErrNoLanguageSection, "path", configPath)
	}
	if strings.TrimSpace(file.Java.OutputFolder) == "" {
		return nil, zerr.With(domain.ErrMissingOutputFolder, "path", configPath)
	}

	cfg, err := toDomain(file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	if err := domain.ValidateOutputFolder(cfg.OutputFolder); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if cfg.Publisher == "" || cfg.Project == "" || cfg.Version == "" {
		l.Logger.Warn(domain.ProjectFileName + " does not declare publisher, project and version")
	}

	return cfg, nil
}

// ParseManifest decodes the project file of a registry package. Packages without
// a language section simply have no dependencies.
func ParseManifest(data []byte) (*domain.ProjectConfig, error) {
	file, err := parse(data)
	if err != nil {
		return nil, err
	}
	return toDomain(file)
}

func parse(data []byte) (*Projectfile, error) {
	var file Projectfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return &file, nil
}

func toDomain(file *Projectfile) (*domain.ProjectConfig, error) {
	cfg := &domain.ProjectConfig{
		Publisher: strings.TrimSpace(file.Publisher),
		Project:   strings.TrimSpace(file.Project),
		Version:   strings.TrimSpace(file.Version),
	}
	if file.Java == nil {
		return cfg, nil
	}

	java := file.Java
	if java.MaxErrors < 0 || java.MaxWarnings < 0 {
		return nil, zerr.With(domain.ErrConfigParseFailed, "reason", "maxErrors and maxWarnings must not be negative")
	}

	cfg.TargetVersion = strings.TrimSpace(java.TargetVersion)
	cfg.OutputFolder = canonicalPath(java.OutputFolder)
	cfg.SourceFolders = canonicalPaths(java.SourceFolders)
	cfg.MaxErrors = java.MaxErrors
	cfg.MaxWarnings = java.MaxWarnings

	for _, raw := range java.Dependencies {
		sig, err := domain.ParsePackageSignature(raw)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		}
		cfg.Dependencies = append(cfg.Dependencies, sig)
	}

	return cfg, nil
}

func canonicalPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	return path.Clean(filepath.ToSlash(p))
}

// canonicalPaths cleans and de-duplicates paths, keeping their first occurrence.
func canonicalPaths(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		p = canonicalPath(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
