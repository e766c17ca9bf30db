package domain

import (
	"path"
	"strings"
	"time"
)

// SourceFile is one source unit discovered on disk.
type SourceFile struct {
	// RelativePath is relative to the project root, with forward slashes.
	RelativePath string
	// ClassPath is the path relative to the unit's source folder, without extension.
	// It names the compiled artifact inside the output folder.
	ClassPath string
	// ModTime is the file's last-modified timestamp.
	ModTime time.Time
}

// CompiledOutput returns the expected compiled artifact, relative to the output folder.
func (f SourceFile) CompiledOutput() string {
	return f.ClassPath + ClassExt
}

// ClassPathOf derives the class path of the unit at relPath from the first source
// folder containing it. It reports false when no folder contains the unit.
func ClassPathOf(relPath string, folders []string) (string, bool) {
	if !strings.HasSuffix(relPath, SourceExt) {
		return "", false
	}
	for _, folder := range folders {
		prefix := path.Clean(folder) + "/"
		if prefix == "./" {
			prefix = ""
		}
		if rest, ok := strings.CutPrefix(relPath, prefix); ok && rest != SourceExt {
			return strings.TrimSuffix(rest, SourceExt), true
		}
	}
	return "", false
}

// BuildPlan partitions the discovered source units for one run.
type BuildPlan struct {
	// Discovered lists every unit found on disk, in discovery order.
	Discovered []SourceFile

	Unchanged []string
	New       []string
	Modified  []string
	Deleted   []string

	DependentsOfChanged   []string
	DependentsOfDeleted   []string
	MissingCompiledOutput []string

	// FullRebuild is set when a global invalidation trigger fired.
	FullRebuild bool
}

// FilesByPath indexes the discovered units by relative path.
func (p *BuildPlan) FilesByPath() map[string]SourceFile {
	files := make(map[string]SourceFile, len(p.Discovered))
	for _, f := range p.Discovered {
		files[f.RelativePath] = f
	}
	return files
}

// File returns the discovered unit at path.
func (p *BuildPlan) File(path string) (SourceFile, bool) {
	for _, f := range p.Discovered {
		if f.RelativePath == path {
			return f, true
		}
	}
	return SourceFile{}, false
}

// CompileSet returns the units to compile, in construction order without duplicates.
// On a full rebuild it is every discovered unit in discovery order.
func (p *BuildPlan) CompileSet() []string {
	if p.FullRebuild {
		all := make([]string, 0, len(p.Discovered))
		for _, f := range p.Discovered {
			all = append(all, f.RelativePath)
		}
		return all
	}

	seen := make(map[string]struct{})
	var set []string
	for _, group := range [][]string{
		p.New,
		p.Modified,
		p.DependentsOfChanged,
		p.DependentsOfDeleted,
		p.MissingCompiledOutput,
	} {
		for _, path := range group {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			set = append(set, path)
		}
	}
	return set
}

// CarryForward returns the unchanged units whose cache records survive as they are.
func (p *BuildPlan) CarryForward() []string {
	compiling := make(map[string]struct{})
	for _, path := range p.CompileSet() {
		compiling[path] = struct{}{}
	}

	var keep []string
	for _, path := range p.Unchanged {
		if _, ok := compiling[path]; !ok {
			keep = append(keep, path)
		}
	}
	return keep
}
