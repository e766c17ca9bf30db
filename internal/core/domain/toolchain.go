package domain

// CompileRequest carries everything the toolchain needs for one invocation.
type CompileRequest struct {
	// Compiler is the executable name or path.
	Compiler string
	// Root is the project root and the compiler's working directory.
	Root string
	// OutputFolder is relative to Root.
	OutputFolder string
	// TargetVersion is the configured target, empty when not set.
	TargetVersion string
	// BootClasspath is the legacy runtime archive, set together with TargetVersion.
	BootClasspath string
	Classpath     Classpath
	// Sources are relative to Root, in compile-set order.
	Sources []string
}

// CompileResult is the outcome of one compiler invocation.
type CompileResult struct {
	ExitCode int
	Issues   []Issue
	// ReportedErrors and ReportedWarnings are the compiler's own trailing tallies.
	ReportedErrors   int
	ReportedWarnings int
	// Output is the raw process output, kept for failures without parseable diagnostics.
	Output string
}

// Failed reports whether the compiler exited unsuccessfully.
func (r *CompileResult) Failed() bool {
	return r.ExitCode != 0
}

// ProcessResult is the captured outcome of an external process.
type ProcessResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}
