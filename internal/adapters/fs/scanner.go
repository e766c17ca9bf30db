package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceScanner = (*Scanner)(nil)

// Scanner discovers source units in the project's source folders.
type Scanner struct {
	walker *Walker
}

// NewScanner creates a new Scanner.
func NewScanner(walker *Walker) *Scanner {
	return &Scanner{walker: walker}
}

// Scan walks each source folder in order. Folders that do not exist are skipped and
// a unit reachable through more than one folder is reported once, for the first.
func (s *Scanner) Scan(root string, folders []string) ([]domain.SourceFile, error) {
	var files []domain.SourceFile
	seen := make(map[string]struct{})

	for _, folder := range folders {
		dir := filepath.Join(root, filepath.FromSlash(folder))

		info, err := os.Stat(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceScanFailed.Error()), "path", dir)
		}
		if !info.IsDir() {
			continue
		}

		for path, err := range s.walker.WalkFiles(dir, domain.SourceExt) {
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceScanFailed.Error()), "path", dir)
			}

			file, err := describe(root, dir, path)
			if err != nil {
				return nil, err
			}
			if _, ok := seen[file.RelativePath]; ok {
				continue
			}
			seen[file.RelativePath] = struct{}{}
			files = append(files, file)
		}
	}

	return files, nil
}

func describe(root, dir, path string) (domain.SourceFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.SourceFile{}, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return domain.SourceFile{}, zerr.With(zerr.Wrap(err, domain.ErrSourceScanFailed.Error()), "path", path)
	}
	inFolder, err := filepath.Rel(dir, path)
	if err != nil {
		return domain.SourceFile{}, zerr.With(zerr.Wrap(err, domain.ErrSourceScanFailed.Error()), "path", path)
	}

	return domain.SourceFile{
		RelativePath: filepath.ToSlash(rel),
		ClassPath:    strings.TrimSuffix(filepath.ToSlash(inFolder), domain.SourceExt),
		ModTime:      info.ModTime(),
	}, nil
}
