package orchestrator

import (
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
)

// unitIndex maps compiled class names back to the project units that declare them.
type unitIndex map[string]string

func newUnitIndex(files []domain.SourceFile) unitIndex {
	idx := make(unitIndex, len(files))
	for _, file := range files {
		if _, ok := idx[file.ClassPath]; !ok {
			idx[file.ClassPath] = file.RelativePath
		}
	}
	return idx
}

// resolve returns the project units behind the referenced class names, without self.
// Nested classes resolve to their top-level unit. Classes outside the project are dropped.
func (idx unitIndex) resolve(classNames []string, self string) []string {
	var units []string
	for _, name := range classNames {
		if i := strings.IndexByte(name, '$'); i > 0 {
			name = name[:i]
		}
		unit, ok := idx[name]
		if !ok || unit == self {
			continue
		}
		units = append(units, unit)
	}
	return units
}
