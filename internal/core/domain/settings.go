package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Default project settings, matching a conventional single-page app layout.
const (
	DefaultEntry       = "./src/assets/js/index.js"
	DefaultTemplate    = "./src/template.html"
	DefaultOutputDir   = "dist"
	DefaultPublicPath  = "/"
	DefaultContentBase = "./dist"
)

// DevServerSettings holds the project-level dev server knobs.
type DevServerSettings struct {
	Enabled            bool
	ContentBase        string
	Compress           bool
	HistoryAPIFallback bool
	Open               bool
	Overlay            bool
}

// Settings are the mode-independent project inputs of an evaluation.
type Settings struct {
	Entry      string
	Template   string
	OutputDir  string
	PublicPath string
	DevServer  DevServerSettings
}

// DefaultSettings returns the settings used when a project has no config file.
func DefaultSettings() Settings {
	return Settings{
		Entry:      DefaultEntry,
		Template:   DefaultTemplate,
		OutputDir:  DefaultOutputDir,
		PublicPath: DefaultPublicPath,
		DevServer: DevServerSettings{
			Enabled:            true,
			ContentBase:        DefaultContentBase,
			Compress:           true,
			HistoryAPIFallback: true,
			Open:               true,
			Overlay:            true,
		},
	}
}

// Validate checks that every required setting is present.
func (s Settings) Validate() error {
	required := []struct {
		key, value string
	}{
		{"entry", s.Entry},
		{"template", s.Template},
		{"outputDir", s.OutputDir},
		{"publicPath", s.PublicPath},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return zerr.With(ErrInvalidSettings, "key", r.key)
		}
	}
	if s.DevServer.Enabled && strings.TrimSpace(s.DevServer.ContentBase) == "" {
		return zerr.With(ErrInvalidSettings, "key", "devServer.contentBase")
	}
	return nil
}

// Project is a loaded project: its root directory, the config file it came from
// (empty when defaults are used) and the resulting settings.
type Project struct {
	Root       string
	ConfigPath string
	Settings   Settings
}
