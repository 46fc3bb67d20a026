// Package config provides the project settings loader for assemble.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/assemble/internal/core/domain"
	"go.trai.ch/assemble/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers assemble.yaml from cwd upwards and merges it onto the default settings.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	configPath, err := l.DiscoverConfigPath(absCwd)
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		return &domain.Project{
			Root:     absCwd,
			Settings: domain.DefaultSettings(),
		}, nil
	}

	var file Assemblefile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "file", configPath)
	}

	if file.Version != SupportedVersion {
		return nil, zerr.With(zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version), "file", configPath)
	}

	settings := l.mergeSettings(file, configPath)
	if err := settings.Validate(); err != nil {
		return nil, zerr.With(err, "file", configPath)
	}

	return &domain.Project{
		Root:       resolveRoot(configPath, file.Root),
		ConfigPath: configPath,
		Settings:   settings,
	}, nil
}

// DiscoverConfigPath walks up from cwd until it finds assemble.yaml.
func (l *Loader) DiscoverConfigPath(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) mergeSettings(file Assemblefile, configPath string) domain.Settings {
	s := domain.DefaultSettings()

	setString(&s.Entry, file.Entry)
	setString(&s.Template, file.Template)
	setString(&s.OutputDir, file.OutputDir)
	setString(&s.PublicPath, file.PublicPath)

	if ds := file.DevServer; ds != nil {
		setBool(&s.DevServer.Enabled, ds.Enabled)
		setString(&s.DevServer.ContentBase, ds.ContentBase)
		setBool(&s.DevServer.Compress, ds.Compress)
		setBool(&s.DevServer.HistoryAPIFallback, ds.HistoryAPIFallback)
		setBool(&s.DevServer.Open, ds.Open)
		setBool(&s.DevServer.Overlay, ds.Overlay)

		if !s.DevServer.Enabled && ds.hasOptions() && l.Logger != nil {
			l.Logger.Warn("devServer options in " + configPath + " have no effect while devServer.enabled is false")
		}
	}

	return s
}

func (d *DevServerDTO) hasOptions() bool {
	return d.ContentBase != "" || d.Compress != nil || d.HistoryAPIFallback != nil ||
		d.Open != nil || d.Overlay != nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// readAndUnmarshalYAML decodes configPath into target, rejecting unknown keys.
// An empty file decodes to the zero value.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath comes from discovery
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
