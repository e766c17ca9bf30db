// Package store persists the build cache as a JSON document next to the compiled output.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.CacheStore using a flat JSON file per output folder.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new cache store that reports unreadable caches through logger.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// Load reads the cache at path. A missing, empty or corrupt cache yields an empty
// cache so the next build starts from scratch.
func (s *Store) Load(path string) (*domain.BuildCache, error) {
	path = filepath.Clean(path)

	//nolint:gosec // Path is cleaned and derived from the project configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewBuildCache(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.logger.Warn("build cache " + path + " is empty, rebuilding everything")
		return domain.NewBuildCache(), nil
	}

	var cache domain.BuildCache
	if err := json.Unmarshal(data, &cache); err != nil {
		s.logger.Warn("build cache " + path + " is unreadable, rebuilding everything: " + err.Error())
		return domain.NewBuildCache(), nil
	}

	if cache.Sources == nil {
		cache.Sources = make(map[string]domain.SourceUnitRecord)
	}
	for key, rec := range cache.Sources {
		rec.RelativePath = key
		if rec.Issues == nil {
			rec.Issues = []domain.Issue{}
		}
		cache.Sources[key] = rec
	}

	return &cache, nil
}

// Save replaces the cache at path. The document is written to a temporary file in
// the same directory and renamed over the old one. An existing file with identical
// content is left untouched.
func (s *Store) Save(path string, cache *domain.BuildCache) error {
	path = filepath.Clean(path)

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}
	data = append(data, '\n')

	//nolint:gosec // Path is cleaned and derived from the project configuration
	if existing, err := os.ReadFile(path); err == nil && xxhash.Sum64(existing) == xxhash.Sum64(data) {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+domain.CacheFileName+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()

	if err := writeAndClose(tmp, data); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(domain.FilePerm); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
