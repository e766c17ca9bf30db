package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/fs"
)

func TestVerifier_VerifyOutputs(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "com", "acme"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "com", "acme", "A.class"), []byte{0xCA}, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "B.class"), []byte{0xCA}, 0o600))

	exists, err := verifier.VerifyOutputs(tmpDir, []string{"com/acme/A.class", "B.class"})
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = verifier.VerifyOutputs(tmpDir, []string{"B.class", "C.class"})
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = verifier.VerifyOutputs(filepath.Join(tmpDir, "missing"), []string{"B.class"})
	require.NoError(t, err)
	assert.False(t, exists)
}
