package ports

import "go.trai.ch/kiln/internal/core/domain"

// PackageRegistry gives read-only access to the version-addressed package registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_registry.go -destination=mocks/mock_package_registry.go -package=mocks
type PackageRegistry interface {
	// Locate returns the compiled-artifact bundle of the package.
	// It fails with domain.ErrPackageNotFound naming the first missing path segment.
	Locate(registryRoot string, sig domain.PackageSignature) (string, error)

	// Manifest returns the package's own project configuration, or nil if it has none.
	Manifest(registryRoot string, sig domain.PackageSignature) (*domain.ProjectConfig, error)
}
