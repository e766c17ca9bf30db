// Package orchestrator runs one incremental build from configuration to updated cache.
package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/planner"
	"go.trai.ch/kiln/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Orchestrator sequences the phases of a build.
type Orchestrator struct {
	loader    ports.ConfigLoader
	toolchain ports.Toolchain
	runtimes  ports.RuntimeLocator
	store     ports.CacheStore
	sources   ports.SourceScanner
	classes   ports.DependencyScanner
	pruner    ports.OutputPruner
	planner   *planner.Planner
	resolver  *resolver.Resolver
	telemetry ports.Telemetry
	logger    ports.Logger
}

// Deps groups the collaborators of an Orchestrator.
type Deps struct {
	Loader    ports.ConfigLoader
	Toolchain ports.Toolchain
	Runtimes  ports.RuntimeLocator
	Store     ports.CacheStore
	Sources   ports.SourceScanner
	Classes   ports.DependencyScanner
	Pruner    ports.OutputPruner
	Planner   *planner.Planner
	Resolver  *resolver.Resolver
	Telemetry ports.Telemetry
	Logger    ports.Logger
}

// New creates an Orchestrator.
func New(deps Deps) *Orchestrator {
	return &Orchestrator{
		loader:    deps.Loader,
		toolchain: deps.Toolchain,
		runtimes:  deps.Runtimes,
		store:     deps.Store,
		sources:   deps.Sources,
		classes:   deps.Classes,
		pruner:    deps.Pruner,
		planner:   deps.Planner,
		resolver:  deps.Resolver,
		telemetry: deps.Telemetry,
		logger:    deps.Logger,
	}
}

// Request describes one build invocation.
type Request struct {
	// Root is the project root holding the project file.
	Root         string
	RegistryRoot string
	Compiler     string
	// Force compiles every unit regardless of the cache.
	Force bool
}

// session carries the state shared by the phases of one build.
type session struct {
	req       Request
	project   *domain.ProjectConfig
	version   string
	boot      string
	cachePath string
	outputDir string
	cache     *domain.BuildCache
	plan      *domain.BuildPlan
}

// Build runs the phases in order. Failures before the compile step leave the cache
// untouched. Once the compiler has run, the cache is saved whatever the outcome.
func (o *Orchestrator) Build(ctx context.Context, req Request) (*domain.BuildReport, error) {
	s, err := o.prepare(ctx, req, true)
	if err != nil {
		return nil, err
	}

	if err := o.pruneDeleted(ctx, s); err != nil {
		return nil, err
	}

	report := &domain.BuildReport{
		Project:          s.project,
		ToolchainVersion: s.version,
		Plan:             s.plan,
	}

	compileSet := s.plan.CompileSet()
	var result *domain.CompileResult
	if len(compileSet) == 0 {
		o.logger.Info("nothing to compile")
		_, vertex := o.telemetry.Record(ctx, "compile")
		vertex.Cached()
		vertex.Complete(nil)
	} else {
		result, err = o.compile(ctx, s, compileSet)
		if err != nil {
			return nil, err
		}
		report.Compiled = true
	}

	updated, unattributed, err := o.reconcile(ctx, s, compileSet, result)
	if err != nil {
		return nil, err
	}
	report.Issues = updated.Issues()
	report.Unattributed = unattributed

	if result != nil && result.Failed() && len(result.Issues) == 0 {
		failed := zerr.With(domain.ErrCompilationFailed, "exit_code", result.ExitCode)
		return report, zerr.With(failed, "output", strings.TrimSpace(result.Output))
	}

	return report, nil
}

// Plan runs the phases up to planning without compiling or touching the cache.
func (o *Orchestrator) Plan(ctx context.Context, req Request) (*domain.BuildReport, error) {
	s, err := o.prepare(ctx, req, false)
	if err != nil {
		return nil, err
	}
	return &domain.BuildReport{
		Project: s.project,
		Plan:    s.plan,
		Issues:  s.cache.Issues(),
	}, nil
}

func (o *Orchestrator) prepare(ctx context.Context, req Request, withToolchain bool) (*session, error) {
	s := &session{req: req}

	_, vertex := o.telemetry.Record(ctx, "load configuration")
	project, err := o.loader.Load(req.Root)
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}
	s.project = project
	s.outputDir = filepath.Join(req.Root, filepath.FromSlash(project.OutputFolder))
	s.cachePath = domain.CachePath(req.Root, filepath.FromSlash(project.OutputFolder))

	if withToolchain {
		if err := o.resolveToolchain(ctx, s); err != nil {
			return nil, err
		}
	}

	_, vertex = o.telemetry.Record(ctx, "plan")
	err = o.planBuild(s)
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (o *Orchestrator) resolveToolchain(ctx context.Context, s *session) (err error) {
	ctx, vertex := o.telemetry.Record(ctx, "resolve toolchain")
	defer func() { vertex.Complete(err) }()

	s.version, err = o.toolchain.Version(ctx, s.req.Compiler, s.req.Root)
	if err != nil {
		return err
	}
	vertex.Log(domain.LogLevelInfo, s.version)

	if s.project.TargetVersion == "" {
		return nil
	}
	legacy, err := domain.IsLegacyTarget(s.project.TargetVersion)
	if err != nil || !legacy {
		return err
	}
	s.boot, err = o.runtimes.BootClasspath(s.project.TargetVersion)
	return err
}

func (o *Orchestrator) planBuild(s *session) error {
	cache, err := o.store.Load(s.cachePath)
	if err != nil {
		return err
	}
	s.cache = cache

	files, err := o.sources.Scan(s.req.Root, s.project.Sources())
	if err != nil {
		return err
	}

	plan, err := o.planner.Plan(files, cache, planner.Options{
		Project:   s.project,
		OutputDir: s.outputDir,
		Force:     s.req.Force,
	})
	if err != nil {
		return err
	}
	s.plan = plan

	o.logger.Info(summarize(plan))
	return nil
}

// pruneDeleted removes the compiled classes of deleted units, nested classes included.
func (o *Orchestrator) pruneDeleted(ctx context.Context, s *session) (err error) {
	folders := s.project.Sources()
	if s.cache.Project != nil {
		folders = append(slices.Clone(folders), s.cache.Project.Sources()...)
	}

	var classPaths []string
	for _, path := range s.plan.Deleted {
		if classPath, ok := domain.ClassPathOf(path, folders); ok {
			classPaths = append(classPaths, classPath)
		}
	}
	if len(classPaths) == 0 {
		return nil
	}

	_, vertex := o.telemetry.Record(ctx, "remove deleted outputs")
	defer func() { vertex.Complete(err) }()
	return o.pruner.RemoveOutputs(s.outputDir, classPaths)
}

func (o *Orchestrator) compile(ctx context.Context, s *session, compileSet []string) (*domain.CompileResult, error) {
	rctx, vertex := o.telemetry.Record(ctx, "resolve packages")
	classpath, err := o.resolver.Resolve(rctx, resolver.Request{
		RegistryRoot: s.req.RegistryRoot,
		Root:         s.req.Root,
		OutputFolder: filepath.FromSlash(s.project.OutputFolder),
		Label:        s.project.Label(),
		Dependencies: s.project.Dependencies,
	})
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.outputDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputCreateFailed.Error()), "path", s.outputDir)
	}

	cctx, vertex := o.telemetry.Record(ctx, "compile "+strconv.Itoa(len(compileSet))+" units")
	result, err := o.toolchain.Compile(cctx, domain.CompileRequest{
		Compiler:      s.req.Compiler,
		Root:          s.req.Root,
		OutputFolder:  filepath.FromSlash(s.project.OutputFolder),
		TargetVersion: s.project.TargetVersion,
		BootClasspath: s.boot,
		Classpath:     *classpath,
		Sources:       compileSet,
	})
	if err == nil && result.Failed() {
		vertex.Complete(zerr.With(domain.ErrCompilationFailed, "exit_code", result.ExitCode))
	} else {
		vertex.Complete(err)
	}
	return result, err
}

// reconcile builds the next cache. Compiled units get fresh records, untouched units
// keep theirs and deleted units are dropped. It returns the diagnostics that could
// not be attributed to a compiled unit.
func (o *Orchestrator) reconcile(
	ctx context.Context,
	s *session,
	compileSet []string,
	result *domain.CompileResult,
) (_ *domain.BuildCache, _ []domain.Issue, err error) {
	_, vertex := o.telemetry.Record(ctx, "update cache")
	defer func() { vertex.Complete(err) }()

	next := domain.NewBuildCache()
	next.ToolchainVersion = s.version
	next.Project = s.project.Clone()

	for _, path := range s.plan.CarryForward() {
		if rec, ok := s.cache.Record(path); ok {
			next.Put(rec)
		}
	}

	units := newUnitIndex(s.plan.Discovered)
	compiled := make(map[string]struct{}, len(compileSet))
	for _, path := range compileSet {
		compiled[path] = struct{}{}
	}

	issuesByUnit := make(map[string][]domain.Issue)
	var unattributed []domain.Issue
	if result != nil {
		for _, issue := range result.Issues {
			if _, ok := compiled[issue.SourcePath]; ok {
				issuesByUnit[issue.SourcePath] = append(issuesByUnit[issue.SourcePath], issue)
			} else {
				unattributed = append(unattributed, issue)
			}
		}
	}

	files := s.plan.FilesByPath()
	for _, path := range compileSet {
		file := files[path]
		refs, err := o.classes.References(s.outputDir, file.ClassPath)
		if err != nil {
			return nil, nil, err
		}
		next.Put(domain.NewSourceUnitRecord(path, file.ModTime, units.resolve(refs, path), issuesByUnit[path]))
	}

	if err := o.store.Save(s.cachePath, next); err != nil {
		return nil, nil, err
	}
	return next, unattributed, nil
}

func summarize(plan *domain.BuildPlan) string {
	if plan.FullRebuild {
		return "full rebuild of " + strconv.Itoa(len(plan.Discovered)) + " units"
	}
	return strconv.Itoa(len(plan.New)) + " new, " +
		strconv.Itoa(len(plan.Modified)) + " modified, " +
		strconv.Itoa(len(plan.Deleted)) + " deleted, " +
		strconv.Itoa(len(plan.CompileSet())) + " to compile"
}
