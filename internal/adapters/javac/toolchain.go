package javac

import (
	"context"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Toolchain = (*Toolchain)(nil)

// Toolchain implements ports.Toolchain for javac.
type Toolchain struct {
	runner ports.ProcessRunner
}

// NewToolchain creates a Toolchain running the compiler through runner.
func NewToolchain(runner ports.ProcessRunner) *Toolchain {
	return &Toolchain{runner: runner}
}

// Version runs "<compiler> -version" and returns the first non-empty line it prints.
// Older compilers print it on stderr, newer ones on stdout.
func (t *Toolchain) Version(ctx context.Context, compiler, root string) (string, error) {
	res, err := t.runner.Run(ctx, []string{compiler, "-version"}, root)
	if err != nil {
		return "", err
	}

	if res.ExitCode == 0 {
		for _, stream := range [][]byte{res.Stderr, res.Stdout} {
			for line := range strings.SplitSeq(string(stream), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					return line, nil
				}
			}
		}
	}

	failed := zerr.With(domain.ErrToolchainVersionFailed, "compiler", compiler)
	return "", zerr.With(failed, "exit_code", res.ExitCode)
}

// Compile runs the compiler once over every source in req and parses its diagnostics.
// A non-zero exit status is part of the result, not an error.
func (t *Toolchain) Compile(ctx context.Context, req domain.CompileRequest) (*domain.CompileResult, error) {
	argv := append([]string{req.Compiler}, BuildArgs(req)...)

	res, err := t.runner.Run(ctx, argv, req.Root)
	if err != nil {
		return nil, err
	}

	output := string(res.Stderr) + string(res.Stdout)
	diag := ParseDiagnostics(output, req.Root)

	return &domain.CompileResult{
		ExitCode:         res.ExitCode,
		Issues:           diag.Issues,
		ReportedErrors:   diag.Errors,
		ReportedWarnings: diag.Warnings,
		Output:           output,
	}, nil
}
