package ports

import (
	"io"

	"go.trai.ch/assemble/internal/core/domain"
)

// PlanRenderer writes plans and file classifications in a concrete output format.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type PlanRenderer interface {
	// Render writes plan to w. format must be resolved, not domain.FormatAuto.
	Render(w io.Writer, plan *domain.BuildPlan, format domain.Format) error
	// RenderMatches writes one line per classified file.
	RenderMatches(w io.Writer, matches []domain.FileMatch, format domain.Format) error
}
