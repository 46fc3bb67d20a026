package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assemble/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/assemble/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/assemble/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/assemble/internal/adapters/render"    //nolint:depguard // Wired in app layer
	"go.trai.ch/assemble/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/assemble/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/assemble/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/assemble/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			store.NodeID,
			telemetry.TracerNodeID,
			fs.WalkerNodeID,
			render.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	planStore, err := graft.Dep[ports.PlanStore](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[ports.SourceWalker](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.PlanRenderer](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, planStore, tracer, walker, renderer, newWatcher), nil
}
