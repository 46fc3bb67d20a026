package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assemble/internal/core/ports"
)

// WalkerNodeID is the unique identifier for the source walker Graft node.
const WalkerNodeID graft.ID = "adapter.walker"

func init() {
	graft.Register(graft.Node[ports.SourceWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceWalker, error) {
			return NewWalker(), nil
		},
	})
}
