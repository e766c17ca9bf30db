package ports

import "go.trai.ch/kiln/internal/core/domain"

// CacheStore defines the interface for persisting the build cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Load reads the cache at path.
	// A missing or unreadable cache yields an empty cache, not an error.
	Load(path string) (*domain.BuildCache, error)

	// Save replaces the cache at path atomically.
	Save(path string, cache *domain.BuildCache) error
}
