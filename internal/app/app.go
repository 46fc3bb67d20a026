// Package app implements the application layer for assemble.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/assemble/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/assemble/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/assemble/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/assemble/internal/core/domain"
	"go.trai.ch/assemble/internal/core/ports"
	"go.trai.ch/assemble/internal/engine/evaluator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// planCacheSize bounds the number of memoized plans. Two modes times a handful
// of settings revisions seen during one watch session.
const planCacheSize = 16

// planKey identifies a memoized plan. Evaluation is pure, so equal keys yield equal plans.
type planKey struct {
	mode     domain.BuildMode
	settings domain.Settings
}

type memoEntry struct {
	plan        *domain.BuildPlan
	fingerprint string
}

// App represents the main application logic.
type App struct {
	configLoader   ports.ConfigLoader
	logger         ports.Logger
	store          ports.PlanStore
	tracer         ports.Tracer
	walker         ports.SourceWalker
	renderer       ports.PlanRenderer
	newWatcher     ports.WatcherFactory
	plans          *lru.Cache[planKey, memoEntry]
	stdout         io.Writer
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	store ports.PlanStore,
	tracer ports.Tracer,
	walker ports.SourceWalker,
	renderer ports.PlanRenderer,
	newWatcher ports.WatcherFactory,
) *App {
	// lru.New only fails for a non-positive size.
	plans, _ := lru.New[planKey, memoEntry](planCacheSize)

	return &App{
		configLoader:   loader,
		logger:         log,
		store:          store,
		tracer:         tracer,
		walker:         walker,
		renderer:       renderer,
		newWatcher:     newWatcher,
		plans:          plans,
		stdout:         os.Stdout,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithOutput sets the writer plans and matches are rendered to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithDebounceWindow sets how long watch waits for config changes to settle.
// This is primarily used for testing.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounceWindow = d
	return a
}

// LogOptions configures the logger for one invocation.
type LogOptions struct {
	JSON  bool
	Quiet bool
	Trace bool
}

type configurableLogger interface {
	SetJSON(enable bool)
	SetQuiet(quiet bool)
}

// ConfigureLogging applies opts to the logger. When tracing is requested the
// returned function flushes the span provider; otherwise it is a no-op.
func (a *App) ConfigureLogging(opts LogOptions) func(context.Context) error {
	if l, ok := a.logger.(configurableLogger); ok {
		l.SetJSON(opts.JSON)
		l.SetQuiet(opts.Quiet)
	}
	if !opts.Trace {
		return func(context.Context) error { return nil }
	}
	return telemetry.InstallLogProvider(a.logger)
}

// PlanOptions configuration for the Plan method.
type PlanOptions struct {
	Mode   string
	Format string
	Save   bool
}

// Plan evaluates the plan for a mode, writes it to the output and optionally saves a snapshot.
func (a *App) Plan(ctx context.Context, opts PlanOptions) error {
	mode, format, err := parseModeAndFormat(opts.Mode, opts.Format)
	if err != nil {
		return err
	}

	project, err := a.loadProject()
	if err != nil {
		return err
	}

	plan, fingerprint, err := a.evaluate(ctx, mode, project.Settings)
	if err != nil {
		return err
	}

	if err := a.renderer.Render(a.stdout, plan, detector.ResolveFormat(format, a.stdout)); err != nil {
		return err
	}

	if !opts.Save {
		return nil
	}

	snapshot := domain.PlanSnapshot{Mode: mode, Fingerprint: fingerprint, Plan: plan}
	if err := a.store.Put(project.Root, snapshot); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to save plan"), "mode", mode.String())
	}
	a.logger.Info(fmt.Sprintf("saved %s plan %s", mode, fingerprint))
	return nil
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	// Modes to check; empty means every mode.
	Modes []string
}

// Check evaluates each requested mode concurrently and compares the result to
// the saved snapshot. Every drifted or unsaved mode is reported.
func (a *App) Check(ctx context.Context, opts CheckOptions) error {
	modes := domain.Modes()
	if len(opts.Modes) > 0 {
		modes = make([]domain.BuildMode, 0, len(opts.Modes))
		for _, raw := range opts.Modes {
			mode, err := domain.ParseBuildMode(raw)
			if err != nil {
				return err
			}
			modes = append(modes, mode)
		}
	}

	project, err := a.loadProject()
	if err != nil {
		return err
	}

	fingerprints := make([]string, len(modes))
	results := make([]error, len(modes))

	g, gctx := errgroup.WithContext(ctx)
	for i, mode := range modes {
		g.Go(func() error {
			_, fingerprint, err := a.evaluate(gctx, mode, project.Settings)
			if err != nil {
				return err
			}
			fingerprints[i] = fingerprint
			results[i] = a.compareSnapshot(project.Root, mode, fingerprint)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errs error
	for i, mode := range modes {
		if results[i] != nil {
			errs = errors.Join(errs, results[i])
			continue
		}
		a.logger.Info(fmt.Sprintf("%s plan matches saved plan %s", mode, fingerprints[i]))
	}
	return errs
}

func (a *App) compareSnapshot(root string, mode domain.BuildMode, fingerprint string) error {
	snapshot, err := a.store.Get(root, mode)
	if err != nil {
		return err
	}
	if snapshot == nil {
		return zerr.With(domain.ErrPlanNotSaved, "mode", mode.String())
	}
	if snapshot.Fingerprint != fingerprint {
		err := zerr.With(domain.ErrPlanDrift, "mode", mode.String())
		err = zerr.With(err, "saved", snapshot.Fingerprint)
		return zerr.With(err, "current", fingerprint)
	}
	return nil
}

// MatchOptions configuration for the Match method.
type MatchOptions struct {
	Mode   string
	Format string
	Paths  []string
}

// Match reports the rule that claims each path.
func (a *App) Match(ctx context.Context, opts MatchOptions) error {
	if len(opts.Paths) == 0 {
		return domain.ErrNoPathsSpecified
	}

	mode, format, err := parseModeAndFormat(opts.Mode, opts.Format)
	if err != nil {
		return err
	}

	project, err := a.loadProject()
	if err != nil {
		return err
	}

	plan, _, err := a.evaluate(ctx, mode, project.Settings)
	if err != nil {
		return err
	}

	matches := make([]domain.FileMatch, len(opts.Paths))
	for i, p := range opts.Paths {
		matches[i] = plan.Classify(p)
	}
	return a.renderer.RenderMatches(a.stdout, matches, detector.ResolveFormat(format, a.stdout))
}

// ClassifyOptions configuration for the Classify method.
type ClassifyOptions struct {
	Mode   string
	Format string
	// Dir is the tree to classify; empty means the project root.
	Dir string
}

// classifyIgnores lists the walk exclusions for dir: node_modules at any depth,
// plus the state and output directories of project when they lie inside dir.
func classifyIgnores(dir string, project *domain.Project) []string {
	ignores := []string{"**/node_modules"}

	output := project.Settings.OutputDir
	if !filepath.IsAbs(output) {
		output = filepath.Join(project.Root, output)
	}
	for _, skip := range []string{filepath.Join(project.Root, domain.AssembleDirName), output} {
		rel, err := filepath.Rel(dir, skip)
		if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		ignores = append(ignores, filepath.ToSlash(rel))
	}
	return ignores
}

// Classify walks a source tree and reports the rule that claims each file.
// Dependency directories, the output directory and the metadata directory are skipped.
func (a *App) Classify(ctx context.Context, opts ClassifyOptions) error {
	mode, format, err := parseModeAndFormat(opts.Mode, opts.Format)
	if err != nil {
		return err
	}

	project, err := a.loadProject()
	if err != nil {
		return err
	}

	plan, _, err := a.evaluate(ctx, mode, project.Settings)
	if err != nil {
		return err
	}

	dir := opts.Dir
	if dir == "" {
		dir = project.Root
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	ignores := classifyIgnores(dir, project)

	var (
		matches   []domain.FileMatch
		unmatched int
	)
	for p := range a.walker.WalkFiles(dir, ignores) {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			rel = p
		}
		m := plan.Classify(filepath.ToSlash(rel))
		if !m.Matched() {
			unmatched++
		}
		matches = append(matches, m)
	}

	if err := a.renderer.RenderMatches(a.stdout, matches, detector.ResolveFormat(format, a.stdout)); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("classified %d files, %d without a rule", len(matches), unmatched))
	return nil
}

// ChunkNameOptions configuration for the ChunkName method.
type ChunkNameOptions struct {
	Group string
	Paths []string
}

// ChunkName prints the chunk identifier of each module path within a cache group.
func (a *App) ChunkName(_ context.Context, opts ChunkNameOptions) error {
	if len(opts.Paths) == 0 {
		return domain.ErrNoPathsSpecified
	}

	for _, p := range opts.Paths {
		name, err := domain.GroupName(opts.Group, p)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(a.stdout, name); err != nil {
			return zerr.Wrap(err, "failed to write chunk name")
		}
	}
	return nil
}

func (a *App) loadProject() (*domain.Project, error) {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return project, nil
}

// evaluate returns the plan for mode and settings together with its fingerprint,
// reusing a memoized plan when one exists.
func (a *App) evaluate(
	ctx context.Context,
	mode domain.BuildMode,
	settings domain.Settings,
) (*domain.BuildPlan, string, error) {
	ctx, span := a.tracer.Start(ctx, "evaluate")
	defer span.End()
	span.SetAttribute("mode", mode.String())

	key := planKey{mode: mode, settings: settings}
	if entry, ok := a.plans.Get(key); ok {
		span.SetAttribute("cached", true)
		span.SetAttribute("fingerprint", entry.fingerprint)
		return entry.plan, entry.fingerprint, nil
	}

	plan, err := evaluator.New(settings).Evaluate(mode)
	if err != nil {
		span.RecordError(err)
		return nil, "", err
	}

	fingerprint, err := domain.Fingerprint(plan)
	if err != nil {
		span.RecordError(err)
		return nil, "", err
	}

	span.SetAttribute("cached", false)
	span.SetAttribute("rules", len(plan.Rules))
	span.SetAttribute("plugins", len(plan.Plugins))
	span.SetAttribute("fingerprint", fingerprint)
	a.tracer.EmitPlan(ctx, mode.String(), fingerprint)

	a.plans.Add(key, memoEntry{plan: plan, fingerprint: fingerprint})
	return plan, fingerprint, nil
}

func parseModeAndFormat(rawMode, rawFormat string) (domain.BuildMode, domain.Format, error) {
	mode, err := domain.ParseBuildMode(rawMode)
	if err != nil {
		return "", "", err
	}
	format, err := domain.ParseFormat(rawFormat)
	if err != nil {
		return "", "", err
	}
	return mode, format, nil
}
