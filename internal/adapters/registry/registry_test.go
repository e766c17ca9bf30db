package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/registry"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

func publish(t *testing.T, root string, sig domain.PackageSignature, manifest string) string {
	t.Helper()
	dir := registry.PackageDir(root, sig)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	jar := filepath.Join(dir, sig.Project.String()+".jar")
	require.NoError(t, os.WriteFile(jar, []byte("PK"), 0o600))
	if manifest != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ProjectFileName), []byte(manifest), 0o600))
	}
	return jar
}

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.New(8)
	require.NoError(t, err)
	return r
}

func TestRegistry_Locate(t *testing.T) {
	root := t.TempDir()
	sig := domain.NewPackageSignature("acme", "core", "1.0.0")
	jar := publish(t, root, sig, "")

	got, err := newRegistry(t).Locate(root, sig)

	require.NoError(t, err)
	assert.Equal(t, jar, got)
}

func TestRegistry_Locate_NamesFirstMissingSegment(t *testing.T) {
	root := t.TempDir()
	publish(t, root, domain.NewPackageSignature("acme", "core", "1.0.0"), "")
	require.NoError(t, os.MkdirAll(registry.PackageDir(root, domain.NewPackageSignature("acme", "empty", "1.0.0")), 0o750))

	tests := []struct {
		name    string
		sig     domain.PackageSignature
		missing string
	}{
		{"publisher", domain.NewPackageSignature("other", "core", "1.0.0"), "publisher"},
		{"project", domain.NewPackageSignature("acme", "util", "1.0.0"), "project"},
		{"version", domain.NewPackageSignature("acme", "core", "9.9.9"), "version"},
		{"artifact", domain.NewPackageSignature("acme", "empty", "1.0.0"), "artifact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newRegistry(t).Locate(root, tt.sig)

			require.ErrorContains(t, err, domain.ErrPackageNotFound.Error())
			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, tt.missing, zErr.Metadata()["missing"])
			assert.Equal(t, root, zErr.Metadata()["registry"])
		})
	}
}

func TestRegistry_Manifest(t *testing.T) {
	root := t.TempDir()
	sig := domain.NewPackageSignature("acme", "core", "1.0.0")
	publish(t, root, sig, "publisher: acme\nproject: core\nversion: 1.0.0\njava:\n  outputFolder: build\n  dependencies: [acme/util@2.0.0]\n")

	r := newRegistry(t)
	cfg, err := r.Manifest(root, sig)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, []domain.PackageSignature{domain.NewPackageSignature("acme", "util", "2.0.0")}, cfg.Dependencies)

	// Served from the cache once read.
	require.NoError(t, os.Remove(filepath.Join(registry.PackageDir(root, sig), domain.ProjectFileName)))
	again, err := r.Manifest(root, sig)
	require.NoError(t, err)
	assert.Same(t, cfg, again)
}

func TestRegistry_Manifest_Absent(t *testing.T) {
	root := t.TempDir()
	sig := domain.NewPackageSignature("acme", "core", "1.0.0")
	publish(t, root, sig, "")

	cfg, err := newRegistry(t).Manifest(root, sig)

	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestRegistry_Manifest_Malformed(t *testing.T) {
	root := t.TempDir()
	sig := domain.NewPackageSignature("acme", "core", "1.0.0")
	publish(t, root, sig, "java: [broken")

	_, err := newRegistry(t).Manifest(root, sig)

	require.ErrorContains(t, err, domain.ErrManifestParseFailed.Error())
}

func TestNew_InvalidSize(t *testing.T) {
	_, err := registry.New(0)
	require.Error(t, err)
}
