// Package fs provides file system adapters for discovering source units and
// verifying compiled output.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root whose name ends in ext, in lexical order.
// Version control and hidden directories are skipped. A walk error is yielded once
// and ends the sequence.
func (w *Walker) WalkFiles(root, ext string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && w.shouldSkipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !strings.HasSuffix(d.Name(), ext) {
				return nil
			}

			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

// shouldSkipDir reports hidden directories, which includes .git and .jj.
func (w *Walker) shouldSkipDir(name string) bool {
	return strings.HasPrefix(name, ".")
}
