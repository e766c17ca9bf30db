package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/config"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeProject(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ProjectFileName), []byte(content), 0o600))
}

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, `
publisher: acme
project: widgets
version: 1.0.0
java:
  targetVersion: "1.7"
  outputFolder: ./build/classes/
  sourceFolders: [src, ./src, gen]
  dependencies:
    - acme/core@1.0.0
    - acme/util@2.1.0
  maxErrors: 100
  maxWarnings: 50
`)

	ctrl := gomock.NewController(t)
	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.Publisher)
	assert.Equal(t, "widgets", cfg.Project)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "1.7", cfg.TargetVersion)
	assert.Equal(t, "build/classes", cfg.OutputFolder)
	assert.Equal(t, []string{"src", "gen"}, cfg.SourceFolders)
	assert.Equal(t, []domain.PackageSignature{
		domain.NewPackageSignature("acme", "core", "1.0.0"),
		domain.NewPackageSignature("acme", "util", "2.1.0"),
	}, cfg.Dependencies)
	assert.Equal(t, 100, cfg.MaxErrors)
	assert.Equal(t, 50, cfg.MaxWarnings)
}

func TestLoad_JSONDocument(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, `{"publisher": "acme", "project": "widgets", "version": "1", "java": {"outputFolder": "out"}}`)

	ctrl := gomock.NewController(t)
	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.OutputFolder)
	assert.Equal(t, []string{domain.DefaultSourceFolder}, cfg.Sources())
}

func TestLoad_MissingIdentityWarns(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, "java:\n  outputFolder: build\n")

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := config.NewLoader(mockLogger).Load(dir)
	require.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     *string
		errContains string
	}{
		{
			name:        "missing file",
			errContains: domain.ErrConfigNotFound.Error(),
		},
		{
			name:        "malformed yaml",
			content:     ptr("java: [unterminated"),
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:        "no language section",
			content:     ptr("publisher: acme\nproject: widgets\nversion: \"1\"\n"),
			errContains: domain.ErrNoLanguageSection.Error(),
		},
		{
			name:        "no output folder",
			content:     ptr("publisher: acme\njava:\n  targetVersion: \"8\"\n"),
			errContains: domain.ErrMissingOutputFolder.Error(),
		},
		{
			name:        "output folder is the root",
			content:     ptr("java:\n  outputFolder: .\n"),
			errContains: domain.ErrUnsafeOutputFolder.Error(),
		},
		{
			name:        "output folder is the parent",
			content:     ptr("java:\n  outputFolder: ..\n"),
			errContains: domain.ErrUnsafeOutputFolder.Error(),
		},
		{
			name:        "output folder escapes the root",
			content:     ptr("java:\n  outputFolder: build/../../x\n"),
			errContains: domain.ErrUnsafeOutputFolder.Error(),
		},
		{
			name:        "absolute output folder",
			content:     ptr("java:\n  outputFolder: /tmp/classes\n"),
			errContains: domain.ErrUnsafeOutputFolder.Error(),
		},
		{
			name:        "invalid dependency",
			content:     ptr("java:\n  outputFolder: build\n  dependencies: [acme-core]\n"),
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:        "negative limit",
			content:     ptr("java:\n  outputFolder: build\n  maxErrors: -1\n"),
			errContains: domain.ErrConfigParseFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != nil {
				writeProject(t, dir, *tt.content)
			}

			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)
			mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

			cfg, err := config.NewLoader(mockLogger).Load(dir)

			require.Error(t, err)
			require.ErrorContains(t, err, tt.errContains)
			assert.Nil(t, cfg)
		})
	}
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "java:\n  outputFolder: build\n")
	deep := filepath.Join(root, "src", "com", "acme")
	require.NoError(t, os.MkdirAll(deep, 0o750))

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	got, err := loader.FindRoot(deep)
	require.NoError(t, err)

	want, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindRoot_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	_, err := loader.FindRoot(t.TempDir())

	require.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestParseManifest(t *testing.T) {
	cfg, err := config.ParseManifest([]byte("publisher: acme\nproject: core\nversion: 1.0.0\njava:\n  outputFolder: build\n  dependencies: [acme/util@1.0.0]\n"))
	require.NoError(t, err)
	assert.Equal(t, []domain.PackageSignature{domain.NewPackageSignature("acme", "util", "1.0.0")}, cfg.Dependencies)

	bare, err := config.ParseManifest([]byte("publisher: acme\nproject: core\nversion: 1.0.0\n"))
	require.NoError(t, err)
	assert.Empty(t, bare.Dependencies)

	_, err = config.ParseManifest([]byte("java: [broken"))
	require.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func ptr(s string) *string { return &s }
