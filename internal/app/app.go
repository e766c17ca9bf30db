// Package app implements the application layer for kiln.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader       ports.ConfigLoader
	orchestrator *orchestrator.Orchestrator
	logger       ports.Logger
	out          io.Writer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, orch *orchestrator.Orchestrator, logger ports.Logger) *App {
	return &App{
		loader:       loader,
		orchestrator: orch,
		logger:       logger,
		out:          os.Stdout,
	}
}

// WithOutput sets the writer the build report is printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// BuildOptions configure a build or status run.
type BuildOptions struct {
	RegistryRoot string
	Compiler     string
	Warnings     domain.WarningsPolicy
	Force        bool
}

func (o BuildOptions) request(root string) orchestrator.Request {
	return orchestrator.Request{
		Root:         root,
		RegistryRoot: o.RegistryRoot,
		Compiler:     o.Compiler,
		Force:        o.Force,
	}
}

// Build compiles the project at root and prints its diagnostics.
//
// The returned error wraps domain.ErrDiagnosticsFailed when the build produced
// errors under the warnings policy. Those errors have already been printed.
func (a *App) Build(ctx context.Context, root string, opts BuildOptions) error {
	report, err := a.orchestrator.Build(ctx, opts.request(root))
	if err != nil {
		if report != nil {
			a.printIssues(report, opts.Warnings)
		}
		return zerr.Wrap(err, "build failed")
	}

	tally := a.printIssues(report, opts.Warnings)
	newReporter(a.out, report.Project).summary(report, tally)
	if tally.Errors > 0 {
		return domain.ErrDiagnosticsFailed
	}
	return nil
}

// Status prints which units the next build would compile, without compiling.
func (a *App) Status(ctx context.Context, root string, opts BuildOptions) error {
	report, err := a.orchestrator.Plan(ctx, opts.request(root))
	if err != nil {
		return zerr.Wrap(err, "failed to plan build")
	}
	newReporter(a.out, report.Project).plan(report.Plan)
	return nil
}

// Clean removes the project's output folder, compiled classes and cache included.
func (a *App) Clean(root string) error {
	project, err := a.loader.Load(root)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := domain.ValidateOutputFolder(project.OutputFolder); err != nil {
		return err
	}

	outputDir := filepath.Join(root, filepath.FromSlash(project.OutputFolder))
	if err := os.RemoveAll(outputDir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove output folder"), "path", outputDir)
	}
	a.logger.Info("removed " + project.OutputFolder)
	return nil
}

func (a *App) printIssues(report *domain.BuildReport, policy domain.WarningsPolicy) domain.Tally {
	tally := policy.Apply(report.AllIssues())
	newReporter(a.out, report.Project).issues(tally, policy)
	return tally
}
