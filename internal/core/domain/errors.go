package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when the project configuration file does not exist.
	ErrConfigNotFound = zerr.New("could not find project configuration")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoLanguageSection is returned when the project configuration names no recognized toolchain.
	ErrNoLanguageSection = zerr.New("project configuration has no recognized language section")

	// ErrMissingOutputFolder is returned when the language section does not name an output folder.
	ErrMissingOutputFolder = zerr.New("output folder is not configured")

	// ErrUnsafeOutputFolder is returned when the output folder is not a subdirectory of the project root.
	ErrUnsafeOutputFolder = zerr.New("output folder must be a subdirectory of the project root")

	// ErrInvalidPackageSignature is returned when a dependency is not of the form publisher/project@version.
	ErrInvalidPackageSignature = zerr.New("invalid package signature, expected format: publisher/project@version")

	// ErrRuntimeLocatorNotSet is returned when the runtime locator environment variable is missing or empty.
	ErrRuntimeLocatorNotSet = zerr.New("runtime locator environment variable is not set")

	// ErrRuntimesRootNotFound is returned when the directory holding installed runtimes does not exist.
	ErrRuntimesRootNotFound = zerr.New("installed runtimes root not found")

	// ErrRuntimeNotFound is returned when no installed runtime matches the requested target version.
	ErrRuntimeNotFound = zerr.New("no installed runtime matches target version")

	// ErrUnrecognizedVersion is returned when a target version token cannot be interpreted.
	ErrUnrecognizedVersion = zerr.New("unrecognized target version")

	// ErrToolchainVersionFailed is returned when the compiler does not report a version.
	ErrToolchainVersionFailed = zerr.New("failed to determine toolchain version")

	// ErrPackageNotFound is returned when a dependency is missing from the package registry.
	ErrPackageNotFound = zerr.New("package not found in registry")

	// ErrManifestParseFailed is returned when a registry package carries an unreadable configuration.
	ErrManifestParseFailed = zerr.New("failed to parse package configuration")

	// ErrVersionConflict is returned when the same package is required at more than one version.
	ErrVersionConflict = zerr.New("package version conflict")

	// ErrProcessLaunchFailed is returned when the compiler process cannot be started.
	ErrProcessLaunchFailed = zerr.New("failed to launch process")

	// ErrCompilationFailed is returned when the compiler exits unsuccessfully without parseable diagnostics.
	ErrCompilationFailed = zerr.New("compilation failed")

	// ErrDiagnosticsFailed is returned when the build produced errors under the active warnings policy.
	ErrDiagnosticsFailed = zerr.New("build finished with errors")

	// ErrInvalidWarningsPolicy is returned when the warnings policy is not show, hide or error.
	ErrInvalidWarningsPolicy = zerr.New("invalid warnings policy, expected 'show', 'hide' or 'error'")

	// ErrSourceScanFailed is returned when the source folders cannot be walked.
	ErrSourceScanFailed = zerr.New("failed to scan source folders")

	// ErrClassFileInvalid is returned when a compiled class file cannot be parsed.
	ErrClassFileInvalid = zerr.New("invalid class file")

	// ErrStoreCreateFailed is returned when the build cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build cache directory")

	// ErrStoreReadFailed is returned when the build cache cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build cache")

	// ErrStoreMarshalFailed is returned when the build cache cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build cache")

	// ErrStoreWriteFailed is returned when the build cache cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build cache")

	// ErrOutputCreateFailed is returned when the output folder cannot be created.
	ErrOutputCreateFailed = zerr.New("failed to create output folder")

	// ErrOutputRemoveFailed is returned when a stale compiled artifact cannot be removed.
	ErrOutputRemoveFailed = zerr.New("failed to remove compiled output")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")
)
