package ports

import "go.trai.ch/kiln/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// FindRoot returns the nearest directory at or above cwd holding a project file.
	FindRoot(cwd string) (string, error)

	// Load reads the project configuration from the given project root.
	Load(root string) (*domain.ProjectConfig, error)
}
