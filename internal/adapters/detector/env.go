// Package detector picks the concrete output format when the user asks for auto.
package detector

import (
	"io"
	"os"

	"go.trai.ch/assemble/internal/core/domain"
	"golang.org/x/term"
)

// fder is satisfied by *os.File.
type fder interface {
	Fd() uintptr
}

// IsInteractive reports whether w is a terminal and no CI environment is detected.
func IsInteractive(w io.Writer) bool {
	if IsCI() {
		return false
	}
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// IsCI reports whether the CI environment variable is set to a true value.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// ResolveFormat replaces FormatAuto with text for interactive writers and YAML otherwise.
// Explicit formats are returned unchanged.
func ResolveFormat(requested domain.Format, w io.Writer) domain.Format {
	if requested != domain.FormatAuto && requested != "" {
		return requested
	}
	if IsInteractive(w) {
		return domain.FormatText
	}
	return domain.FormatYAML
}
