package javac_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/javac"
	"go.trai.ch/kiln/internal/core/domain"
)

func writeClass(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name)+domain.ClassExt)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, data, domain.FilePerm))
}

func TestClassScanner_References(t *testing.T) {
	out := t.TempDir()
	writeClass(t, out, "com/acme/App", javac.BuildClassFile("com/acme/App",
		"com/acme/Widget", "java/lang/Object", "[Lcom/acme/Part;", "com/acme/Widget"))

	refs, err := javac.NewClassScanner().References(out, "com/acme/App")

	require.NoError(t, err)
	assert.Equal(t, []string{"com/acme/Part", "com/acme/Widget", "java/lang/Object"}, refs)
}

func TestClassScanner_IncludesNestedClasses(t *testing.T) {
	out := t.TempDir()
	writeClass(t, out, "com/acme/App", javac.BuildClassFile("com/acme/App", "com/acme/App$Inner"))
	writeClass(t, out, "com/acme/App$Inner", javac.BuildClassFile("com/acme/App$Inner", "com/acme/Helper"))
	writeClass(t, out, "com/acme/Application", javac.BuildClassFile("com/acme/Application", "com/acme/Other"))

	refs, err := javac.NewClassScanner().References(out, "com/acme/App")

	require.NoError(t, err)
	assert.Equal(t, []string{"com/acme/Helper"}, refs)
}

func TestClassScanner_MissingOutput(t *testing.T) {
	refs, err := javac.NewClassScanner().References(t.TempDir(), "com/acme/Gone")

	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestClassScanner_BadMagic(t *testing.T) {
	out := t.TempDir()
	writeClass(t, out, "Broken", []byte{0xDE, 0xAD, 0xBE, 0xEF, 0, 0, 0, 52})

	_, err := javac.NewClassScanner().References(out, "Broken")

	require.ErrorContains(t, err, domain.ErrClassFileInvalid.Error())
}

func TestClassScanner_Truncated(t *testing.T) {
	out := t.TempDir()
	data := javac.BuildClassFile("Cut", "Other")
	writeClass(t, out, "Cut", data[:len(data)-6])

	_, err := javac.NewClassScanner().References(out, "Cut")

	require.ErrorContains(t, err, domain.ErrClassFileInvalid.Error())
}
