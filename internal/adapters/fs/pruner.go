package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputPruner = (*Pruner)(nil)

// Pruner removes compiled classes left behind by deleted source units.
type Pruner struct{}

// NewPruner creates a new Pruner.
func NewPruner() *Pruner {
	return &Pruner{}
}

// RemoveOutputs deletes "<classPath>.class" and every "<classPath>$*.class" under outputDir.
func (p *Pruner) RemoveOutputs(outputDir string, classPaths []string) error {
	for _, classPath := range classPaths {
		base := filepath.Join(outputDir, filepath.FromSlash(classPath))

		nested, err := filepath.Glob(base + "$*" + domain.ClassExt)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrOutputRemoveFailed.Error()), "path", base)
		}

		for _, path := range append([]string{base + domain.ClassExt}, nested...) {
			if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return zerr.With(zerr.Wrap(err, domain.ErrOutputRemoveFailed.Error()), "path", path)
			}
		}
	}
	return nil
}
