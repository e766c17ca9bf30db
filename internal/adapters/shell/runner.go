// Package shell provides the process runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.ProcessRunner = (*Runner)(nil)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	environ func() []string
}

// NewRunner creates a new Runner inheriting the current process environment.
func NewRunner() *Runner {
	return &Runner{environ: os.Environ}
}

// Run executes argv in dir and waits for it to exit. Both output streams are drained
// concurrently and captured in full. When ctx carries a telemetry vertex the output is
// mirrored to it as well.
func (r *Runner) Run(ctx context.Context, argv []string, dir string) (domain.ProcessResult, error) {
	if len(argv) == 0 {
		return domain.ProcessResult{}, zerr.With(domain.ErrProcessLaunchFailed, "reason", "empty command")
	}

	env := r.environ()
	name := argv[0]
	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		lp, err := lookPath(name, env)
		if err != nil {
			return domain.ProcessResult{}, zerr.With(zerr.Wrap(err, domain.ErrProcessLaunchFailed.Error()), "command", name)
		}
		executable = lp
	}

	cmd := exec.CommandContext(ctx, executable, argv[1:]...) //nolint:gosec // compiler is chosen by the user
	cmd.Args[0] = name
	cmd.Dir = dir
	cmd.Env = env

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return domain.ProcessResult{}, zerr.With(zerr.Wrap(err, domain.ErrProcessLaunchFailed.Error()), "command", name)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return domain.ProcessResult{}, zerr.With(zerr.Wrap(err, domain.ErrProcessLaunchFailed.Error()), "command", name)
	}

	if err := cmd.Start(); err != nil {
		return domain.ProcessResult{}, zerr.With(zerr.Wrap(err, domain.ErrProcessLaunchFailed.Error()), "command", name)
	}

	var stdout, stderr bytes.Buffer
	var mirror io.Writer = io.Discard
	if v, ok := ports.VertexFromContext(ctx); ok {
		mirror = &lockedWriter{w: v.Stdout()}
	}

	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(io.MultiWriter(&stdout, mirror), stdoutPipe)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(io.MultiWriter(&stderr, mirror), stderrPipe)
		return err
	})
	copyErr := g.Wait()
	waitErr := cmd.Wait()

	result := domain.ProcessResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return result, zerr.With(zerr.Wrap(waitErr, "process did not complete"), "command", name)
		}
		result.ExitCode = exitErr.ExitCode()
	}
	if copyErr != nil {
		return result, zerr.With(zerr.Wrap(copyErr, "failed to capture process output"), "command", name)
	}

	return result, nil
}

// lookPath searches for an executable in the directories named by PATH in env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}

// lockedWriter serializes writes from the two pipe readers.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
