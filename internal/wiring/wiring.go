// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/filedep/internal/adapters/config"
	_ "go.trai.ch/filedep/internal/adapters/fs"
	_ "go.trai.ch/filedep/internal/adapters/logger"
	_ "go.trai.ch/filedep/internal/adapters/manifest"
	_ "go.trai.ch/filedep/internal/adapters/token"
	_ "go.trai.ch/filedep/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/filedep/internal/app"
)
