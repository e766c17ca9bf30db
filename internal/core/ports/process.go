// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// ProcessRunner runs an external process to completion and captures its output.
//
//go:generate go run go.uber.org/mock/mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessRunner interface {
	// Run executes argv with dir as working directory.
	//
	// A non-zero exit status is reported in the result, not as an error. The error
	// is returned only when the process could not be started.
	Run(ctx context.Context, argv []string, dir string) (domain.ProcessResult, error)
}
