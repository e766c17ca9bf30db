package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/fs"
)

func writeClass(t *testing.T, dir, rel string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte{0xCA, 0xFE}, 0o600))
	return path
}

func TestPruner_RemoveOutputs(t *testing.T) {
	out := t.TempDir()
	gone := writeClass(t, out, "com/acme/Gone.class")
	inner := writeClass(t, out, "com/acme/Gone$Inner.class")
	anon := writeClass(t, out, "com/acme/Gone$1.class")
	kept := writeClass(t, out, "com/acme/GoneToo.class")
	other := writeClass(t, out, "com/acme/A.class")

	require.NoError(t, fs.NewPruner().RemoveOutputs(out, []string{"com/acme/Gone"}))

	for _, path := range []string{gone, inner, anon} {
		assert.NoFileExists(t, path)
	}
	assert.FileExists(t, kept)
	assert.FileExists(t, other)
}

func TestPruner_RemoveOutputs_MissingIsFine(t *testing.T) {
	out := t.TempDir()

	require.NoError(t, fs.NewPruner().RemoveOutputs(out, []string{"com/acme/Never"}))
	require.NoError(t, fs.NewPruner().RemoveOutputs(filepath.Join(out, "missing"), []string{"A"}))
}
