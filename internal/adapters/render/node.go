package render

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assemble/internal/core/ports"
)

// NodeID is the unique identifier for the plan renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.PlanRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlanRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
