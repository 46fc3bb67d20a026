// Package render writes build plans as YAML, JSON or a styled text summary.
package render

import (
	"encoding/json"
	"io"

	"go.trai.ch/assemble/internal/core/domain"
	"go.trai.ch/assemble/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.PlanRenderer = (*Renderer)(nil)

// Renderer implements ports.PlanRenderer.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes plan to w in format.
func (r *Renderer) Render(w io.Writer, plan *domain.BuildPlan, format domain.Format) error {
	if format == domain.FormatText {
		return wrapEncode(writePlanText(w, plan), format)
	}
	return encode(w, plan, format)
}

// RenderMatches writes the classification of each file in format.
func (r *Renderer) RenderMatches(w io.Writer, matches []domain.FileMatch, format domain.Format) error {
	if format == domain.FormatText {
		return wrapEncode(writeMatchesText(w, matches), format)
	}
	if matches == nil {
		matches = []domain.FileMatch{}
	}
	return encode(w, matches, format)
}

func encode(w io.Writer, v any, format domain.Format) error {
	switch format {
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return wrapEncode(enc.Encode(v), format)
	case domain.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return wrapEncode(err, format)
		}
		return wrapEncode(enc.Close(), format)
	default:
		return zerr.With(domain.ErrUnknownFormat, "format", format.String())
	}
}

func wrapEncode(err error, format domain.Format) error {
	if err == nil {
		return nil
	}
	return zerr.With(zerr.Wrap(err, domain.ErrEncodeFailed.Error()), "format", format.String())
}
