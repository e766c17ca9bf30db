package domain

import (
	"os"
	"path/filepath"
)

const (
	// ProjectFileName is the name of the project configuration file.
	ProjectFileName = "kiln.yaml"

	// CacheFileName is the name of the build cache file kept inside the output folder.
	CacheFileName = "kiln-cache.json"

	// SourceExt is the extension of source units.
	SourceExt = ".java"

	// ClassExt is the extension of compiled artifacts.
	ClassExt = ".class"

	// RuntimeLocatorEnv names the environment variable pointing at the active runtime install.
	RuntimeLocatorEnv = "JAVA_HOME"

	// RuntimeArchive is the runtime class archive used as legacy boot classpath.
	RuntimeArchive = "rt.jar"

	// LanguageKey is the project configuration section recognized by the toolchain.
	LanguageKey = "java"

	// DefaultSourceFolder is used when the project does not list its source folders.
	DefaultSourceFolder = "src"

	// KilnDirName is the per-user settings directory.
	KilnDirName = ".kiln"

	// RegistryDirName is the default package registry directory under KilnDirName.
	RegistryDirName = "registry"

	// EnvFileName is the optional per-project environment file.
	EnvFileName = ".env"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// CachePath returns the build cache location for a project rooted at root.
func CachePath(root, outputFolder string) string {
	return filepath.Join(root, outputFolder, CacheFileName)
}

// DefaultRegistryPath returns the per-user package registry, falling back to a
// relative path when the home directory is unknown.
func DefaultRegistryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(KilnDirName, RegistryDirName)
	}
	return filepath.Join(home, KilnDirName, RegistryDirName)
}
