package resolver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/registry"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.trai.ch/kiln/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

// publish adds a package to the registry at root, declaring deps in its manifest.
func publish(t *testing.T, root, signature string, deps ...string) string {
	t.Helper()
	sig, err := domain.ParsePackageSignature(signature)
	require.NoError(t, err)

	dir := registry.PackageDir(root, sig)
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	jar := filepath.Join(dir, sig.Project.String()+registry.ArtifactExt)
	require.NoError(t, os.WriteFile(jar, []byte("PK"), domain.FilePerm))

	if len(deps) > 0 {
		manifest := "publisher: " + sig.Publisher.String() + "\n" +
			"project: " + sig.Project.String() + "\n" +
			"version: \"" + sig.Version + "\"\n" +
			"java:\n  outputFolder: bin\n  dependencies:\n"
		for _, dep := range deps {
			manifest += "    - " + dep + "\n"
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ProjectFileName), []byte(manifest), domain.FilePerm))
	}
	return jar
}

func signatures(t *testing.T, raw ...string) []domain.PackageSignature {
	t.Helper()
	out := make([]domain.PackageSignature, 0, len(raw))
	for _, s := range raw {
		sig, err := domain.ParsePackageSignature(s)
		require.NoError(t, err)
		out = append(out, sig)
	}
	return out
}

func newResolver(t *testing.T) *resolver.Resolver {
	t.Helper()
	reg, err := registry.New(registry.DefaultManifestCacheSize)
	require.NoError(t, err)
	return resolver.New(reg)
}

func request(t *testing.T, registryRoot string, deps ...string) resolver.Request {
	t.Helper()
	return resolver.Request{
		RegistryRoot: registryRoot,
		Root:         "/work/app",
		OutputFolder: "bin",
		Label:        "acme/app@1.0.0",
		Dependencies: signatures(t, deps...),
	}
}

func TestResolve_BreadthFirstClasspath(t *testing.T) {
	reg := t.TempDir()
	core := publish(t, reg, "acme/core@1.0", "acme/log@1.0")
	util := publish(t, reg, "acme/util@1.0", "acme/log@1.0")
	log := publish(t, reg, "acme/log@1.0")

	cp, err := newResolver(t).Resolve(context.Background(), request(t, reg, "acme/core@1.0", "acme/util@1.0"))

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("/work/app", "bin"), core, util, log}, cp.Entries)
}

func TestResolve_NoDependencies(t *testing.T) {
	cp, err := newResolver(t).Resolve(context.Background(), request(t, t.TempDir()))

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("/work/app", "bin")}, cp.Entries)
}

func TestResolve_VersionConflict(t *testing.T) {
	reg := t.TempDir()
	publish(t, reg, "acme/core@1.0", "acme/log@1.0")
	publish(t, reg, "acme/util@1.0", "acme/log@2.0")
	publish(t, reg, "acme/log@1.0")
	// The losing version's subtree is never expanded, so its missing dependency is not reported.
	publish(t, reg, "acme/log@2.0", "acme/missing@1.0")

	_, err := newResolver(t).Resolve(context.Background(), request(t, reg, "acme/core@1.0", "acme/util@1.0"))

	require.ErrorIs(t, err, domain.ErrVersionConflict)
	var conflictErr *domain.VersionConflictError
	require.True(t, errors.As(err, &conflictErr))
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, "acme/log", conflictErr.Conflicts[0].Package)

	want := strings.Join([]string{
		domain.ErrVersionConflict.Error(),
		"acme/log is required at 2 versions:",
		"  1. acme/app@1.0.0 -> acme/core@1.0 -> acme/log@1.0",
		"  2. acme/app@1.0.0 -> acme/util@1.0 -> acme/log@2.0",
	}, "\n")
	assert.Equal(t, want, err.Error())
}

func TestResolve_DirectConflictAndMultiplePackages(t *testing.T) {
	reg := t.TempDir()
	publish(t, reg, "acme/core@1.0", "acme/log@1.0", "acme/io@1.0")
	publish(t, reg, "acme/log@1.0")
	publish(t, reg, "acme/io@1.0")
	publish(t, reg, "acme/io@2.0")
	publish(t, reg, "acme/log@4.0")

	_, err := newResolver(t).Resolve(context.Background(),
		request(t, reg, "acme/core@1.0", "acme/io@2.0", "acme/core@3.0", "acme/log@4.0", "acme/core@3.0"))

	var conflictErr *domain.VersionConflictError
	require.True(t, errors.As(err, &conflictErr))
	require.Len(t, conflictErr.Conflicts, 3)

	core := conflictErr.Conflicts[0]
	assert.Equal(t, "acme/core", core.Package)
	assert.Len(t, core.Chains, 2)

	assert.Equal(t, "acme/log", conflictErr.Conflicts[1].Package)

	io := conflictErr.Conflicts[2]
	assert.Equal(t, "acme/io", io.Package)
	assert.Equal(t, "acme/io@2.0", chainString(io.Chains[0]))
	assert.Equal(t, "acme/core@1.0 acme/io@1.0", chainString(io.Chains[1]))
}

func chainString(chain []domain.PackageSignature) string {
	parts := make([]string, len(chain))
	for i, sig := range chain {
		parts[i] = sig.String()
	}
	return strings.Join(parts, " ")
}

func TestResolve_DiamondIsNotAConflict(t *testing.T) {
	reg := t.TempDir()
	publish(t, reg, "acme/core@1.0", "acme/log@1.0")
	publish(t, reg, "acme/log@1.0")

	cp, err := newResolver(t).Resolve(context.Background(), request(t, reg, "acme/core@1.0", "acme/log@1.0"))

	require.NoError(t, err)
	assert.Len(t, cp.Entries, 3)
}

func TestResolve_PackageNotFound(t *testing.T) {
	reg := t.TempDir()
	publish(t, reg, "acme/core@1.0", "acme/gone@1.0")

	_, err := newResolver(t).Resolve(context.Background(), request(t, reg, "acme/core@1.0"))

	require.ErrorContains(t, err, domain.ErrPackageNotFound.Error())
}

func TestResolve_ManifestError(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg := mocks.NewMockPackageRegistry(ctrl)
	sig := domain.NewPackageSignature("acme", "core", "1.0")
	reg.EXPECT().Locate("/reg", sig).Return("/reg/core.jar", nil)
	reg.EXPECT().Manifest("/reg", sig).Return(nil, domain.ErrManifestParseFailed)

	_, err := resolver.New(reg).Resolve(context.Background(), resolver.Request{
		RegistryRoot: "/reg",
		Root:         "/work",
		OutputFolder: "bin",
		Dependencies: []domain.PackageSignature{sig},
	})

	require.ErrorIs(t, err, domain.ErrManifestParseFailed)
}

func TestResolve_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newResolver(t).Resolve(ctx, request(t, t.TempDir(), "acme/core@1.0"))

	require.ErrorIs(t, err, context.Canceled)
}
