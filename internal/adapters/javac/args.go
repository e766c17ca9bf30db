// Package javac drives the javac compiler: argument construction, diagnostic parsing,
// legacy runtime lookup and class-file dependency extraction.
package javac

import (
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
)

// Lint categories always enabled so the cache records them per unit.
var lintFlags = []string{"-Xlint:unchecked", "-Xlint:deprecation"}

// BuildArgs returns the compiler arguments for req, without the executable.
// The boot classpath is only passed for legacy targets.
func BuildArgs(req domain.CompileRequest) []string {
	args := make([]string, 0, 10+len(req.Sources))
	args = append(args, "-d", req.OutputFolder)
	args = append(args, lintFlags...)

	if target := strings.TrimSpace(req.TargetVersion); target != "" {
		args = append(args, "-source", target, "-target", target)
		if legacy, err := domain.IsLegacyTarget(target); err == nil && legacy && req.BootClasspath != "" {
			args = append(args, "-bootclasspath", req.BootClasspath)
		}
	}

	if len(req.Classpath.Entries) > 0 {
		args = append(args, "-classpath", req.Classpath.String())
	}

	return append(args, req.Sources...)
}
