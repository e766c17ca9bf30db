package domain

import (
	"fmt"
	"os"
	"strings"
)

// Classpath is the ordered list of artifact locations passed to the toolchain.
type Classpath struct {
	Entries []string
}

// Add appends an entry unless it is already present.
func (c *Classpath) Add(entry string) {
	for _, existing := range c.Entries {
		if existing == entry {
			return
		}
	}
	c.Entries = append(c.Entries, entry)
}

// String joins the entries with the platform path list separator.
func (c *Classpath) String() string {
	return strings.Join(c.Entries, string(os.PathListSeparator))
}

// VersionConflict describes one package required at several versions.
type VersionConflict struct {
	// Package is the "publisher/project" pair.
	Package string
	// Chains holds one provenance chain per distinct version, in order of first
	// occurrence. Each chain starts at the root project and ends at the package.
	Chains [][]PackageSignature
	// Root labels the project the chains start from.
	Root string
}

// VersionConflictError reports every package that resolved to more than one version.
type VersionConflictError struct {
	Conflicts []VersionConflict
}

// Error renders each conflict with its numbered provenance chains.
func (e *VersionConflictError) Error() string {
	var b strings.Builder
	b.WriteString(ErrVersionConflict.Error())
	for _, conflict := range e.Conflicts {
		fmt.Fprintf(&b, "\n%s is required at %d versions:", conflict.Package, len(conflict.Chains))
		for i, chain := range conflict.Chains {
			links := make([]string, 0, len(chain)+1)
			links = append(links, conflict.Root)
			for _, sig := range chain {
				links = append(links, sig.String())
			}
			fmt.Fprintf(&b, "\n  %d. %s", i+1, strings.Join(links, " -> "))
		}
	}
	return b.String()
}

// Unwrap lets errors.Is match ErrVersionConflict.
func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}
