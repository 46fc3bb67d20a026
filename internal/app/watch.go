package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/assemble/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/assemble/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/assemble/internal/core/domain"
	"go.trai.ch/zerr"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	Mode   string
	Format string
}

// Watch renders the plan for a mode, then re-renders it whenever a config
// change alters the plan. It returns when ctx is canceled.
//
// A config that fails to load or evaluate while watching is reported and the
// previous plan stays in effect.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	mode, format, err := parseModeAndFormat(opts.Mode, opts.Format)
	if err != nil {
		return err
	}
	format = detector.ResolveFormat(format, a.stdout)

	project, err := a.loadProject()
	if err != nil {
		return err
	}

	plan, last, err := a.evaluate(ctx, mode, project.Settings)
	if err != nil {
		return err
	}
	if err := a.renderer.Render(a.stdout, plan, format); err != nil {
		return err
	}

	w, err := a.newWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() {
		_ = w.Stop()
	}()

	configPath := project.ConfigPath
	if configPath == "" {
		configPath = filepath.Join(project.Root, domain.ConfigFileName)
	}
	if err := w.Start(ctx, configPath); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", configPath)
	}
	a.logger.Info(fmt.Sprintf("watching %s for %s plan changes", configPath, mode))

	// Reload from where the config was found; root may point elsewhere.
	reloadFrom := "."
	if project.ConfigPath != "" {
		reloadFrom = filepath.Dir(project.ConfigPath)
	}

	reload := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.debounceWindow, func([]string) {
		select {
		case reload <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for event := range w.Events() {
			debouncer.Add(event.Path)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-closed:
			return nil
		case <-reload:
			fingerprint, err := a.rerender(ctx, reloadFrom, mode, format, last)
			if err != nil {
				a.logger.Error(err)
				continue
			}
			last = fingerprint
		}
	}
}

// rerender reloads the project from dir and renders its plan when the
// fingerprint differs from last. It returns the fingerprint now in effect.
func (a *App) rerender(
	ctx context.Context,
	dir string,
	mode domain.BuildMode,
	format domain.Format,
	last string,
) (string, error) {
	project, err := a.configLoader.Load(dir)
	if err != nil {
		return last, zerr.Wrap(err, "failed to load configuration")
	}

	plan, fingerprint, err := a.evaluate(ctx, mode, project.Settings)
	if err != nil {
		return last, err
	}
	if fingerprint == last {
		a.logger.Info("config changed, plan unchanged")
		return last, nil
	}

	if err := a.renderer.Render(a.stdout, plan, format); err != nil {
		return last, err
	}
	a.logger.Info(fmt.Sprintf("%s plan updated %s → %s", mode, last, fingerprint))
	return fingerprint, nil
}
