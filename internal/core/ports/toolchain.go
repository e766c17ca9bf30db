package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// Toolchain drives the external compiler.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Version returns the version string reported by the compiler.
	Version(ctx context.Context, compiler, root string) (string, error)

	// Compile invokes the compiler once for the whole request and parses its diagnostics.
	Compile(ctx context.Context, req domain.CompileRequest) (*domain.CompileResult, error)
}

// DependencyScanner extracts the classes a compiled unit references.
type DependencyScanner interface {
	// References returns the internal class names referenced by the compiled
	// artifact of classPath inside outputDir, nested classes included.
	References(outputDir, classPath string) ([]string, error)
}
