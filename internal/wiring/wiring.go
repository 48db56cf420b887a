// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bakery/internal/adapters/cas"
	_ "go.trai.ch/bakery/internal/adapters/config"
	_ "go.trai.ch/bakery/internal/adapters/fs"
	_ "go.trai.ch/bakery/internal/adapters/logger"
	_ "go.trai.ch/bakery/internal/adapters/shell"
	_ "go.trai.ch/bakery/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/bakery/internal/adapters/toolchain"
	_ "go.trai.ch/bakery/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/bakery/internal/app"
	_ "go.trai.ch/bakery/internal/engine/builder"
)
