// Package wiring registers all graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/carve/internal/adapters/config"
	_ "go.trai.ch/carve/internal/adapters/fonts"
	_ "go.trai.ch/carve/internal/adapters/fs"
	_ "go.trai.ch/carve/internal/adapters/logger"
	_ "go.trai.ch/carve/internal/adapters/parser"
	_ "go.trai.ch/carve/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/carve/internal/app"
	_ "go.trai.ch/carve/internal/engine/depcache"
	_ "go.trai.ch/carve/internal/engine/eval"
	_ "go.trai.ch/carve/internal/engine/modcache"
)
