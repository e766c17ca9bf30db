package ports

// RuntimeLocator finds installed runtimes for legacy target versions.
//
//go:generate go run go.uber.org/mock/mockgen -source=runtime_locator.go -destination=mocks/mock_runtime_locator.go -package=mocks
type RuntimeLocator interface {
	// BootClasspath returns the runtime archive of the installed runtime that
	// best matches the target version.
	BootClasspath(targetVersion string) (string, error)
}
