// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/assemble/internal/adapters/config"
	_ "go.trai.ch/assemble/internal/adapters/fs"
	_ "go.trai.ch/assemble/internal/adapters/logger"
	_ "go.trai.ch/assemble/internal/adapters/render"
	_ "go.trai.ch/assemble/internal/adapters/store"
	_ "go.trai.ch/assemble/internal/adapters/telemetry"
	_ "go.trai.ch/assemble/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/assemble/internal/app"
)
