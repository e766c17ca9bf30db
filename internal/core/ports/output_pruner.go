package ports

// OutputPruner defines the interface for removing compiled artifacts of units
// that no longer exist.
//
//go:generate go run go.uber.org/mock/mockgen -source=output_pruner.go -destination=mocks/mock_output_pruner.go -package=mocks
type OutputPruner interface {
	// RemoveOutputs deletes the artifacts of each class path under outputDir,
	// nested classes included. Missing artifacts are not an error.
	RemoveOutputs(outputDir string, classPaths []string) error
}
