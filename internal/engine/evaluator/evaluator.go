// Package evaluator turns a build mode into a fully-resolved build plan.
package evaluator

import (
	"go.trai.ch/assemble/internal/core/domain"
	"go.trai.ch/zerr"
)

// Evaluator builds plans for one project's settings.
// It holds no mutable state, so a single Evaluator may be shared across goroutines.
type Evaluator struct {
	settings domain.Settings
}

// New creates an Evaluator for the given project settings.
func New(settings domain.Settings) *Evaluator {
	return &Evaluator{settings: settings}
}

// Evaluate builds the plan for the default project layout.
func Evaluate(mode domain.BuildMode) (*domain.BuildPlan, error) {
	return New(domain.DefaultSettings()).Evaluate(mode)
}

// Settings returns the settings the Evaluator was created with.
func (e *Evaluator) Settings() domain.Settings {
	return e.settings
}

// Evaluate returns the build plan for mode.
//
// An unrecognized mode fails with *domain.InvalidModeError. Either a complete
// plan is returned or none at all; the function performs no I/O.
func (e *Evaluator) Evaluate(mode domain.BuildMode) (*domain.BuildPlan, error) {
	if !mode.Valid() {
		return nil, &domain.InvalidModeError{Value: string(mode)}
	}
	if err := e.settings.Validate(); err != nil {
		return nil, err
	}

	rules, err := buildRules(mode)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build rules"), "mode", mode.String())
	}

	plugins, err := buildPlugins(mode, e.settings)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build plugins"), "mode", mode.String())
	}

	optimization, err := buildOptimization(mode)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build optimization policy"), "mode", mode.String())
	}

	return &domain.BuildPlan{
		Mode:         mode,
		Entry:        e.settings.Entry,
		Devtool:      devtool(mode),
		Resolve:      domain.Resolve{Extensions: []string{"*", ".js", ".jsx"}},
		Rules:        rules,
		Plugins:      plugins,
		Optimization: optimization,
		Output:       buildOutput(e.settings),
		DevServer:    buildDevServer(e.settings),
	}, nil
}

func devtool(mode domain.BuildMode) string {
	if mode.IsProduction() {
		return ""
	}
	return "cheap-module-source-map"
}

func buildOutput(s domain.Settings) domain.Output {
	return domain.Output{
		Filename:      "assets/js/[name].[contenthash:8].js",
		ChunkFilename: "assets/js/[name].[contenthash:8].chunk.js",
		Path:          s.OutputDir,
		PublicPath:    s.PublicPath,
	}
}

func buildDevServer(s domain.Settings) *domain.DevServer {
	if !s.DevServer.Enabled {
		return nil
	}
	return &domain.DevServer{
		ContentBase:        s.DevServer.ContentBase,
		Compress:           s.DevServer.Compress,
		HistoryAPIFallback: s.DevServer.HistoryAPIFallback,
		Open:               s.DevServer.Open,
		Overlay:            s.DevServer.Overlay,
	}
}
