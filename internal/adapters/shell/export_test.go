package shell

// NewRunnerWithEnv creates a Runner with a fixed environment for testing.
func NewRunnerWithEnv(env []string) *Runner {
	return &Runner{environ: func() []string { return env }}
}
