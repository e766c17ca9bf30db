package ports

import "go.trai.ch/kiln/internal/core/domain"

// SourceScanner defines the interface for discovering source units.
//
//go:generate go run go.uber.org/mock/mockgen -source=source_scanner.go -destination=mocks/mock_source_scanner.go -package=mocks
type SourceScanner interface {
	// Scan walks the source folders below root and returns every source unit with
	// its current timestamp, in a deterministic order.
	Scan(root string, folders []string) ([]domain.SourceFile, error)
}
