// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/advent/internal/adapters/cas"
	_ "go.trai.ch/advent/internal/adapters/config"
	_ "go.trai.ch/advent/internal/adapters/fs"
	_ "go.trai.ch/advent/internal/adapters/logger"
	_ "go.trai.ch/advent/internal/adapters/metrics"
	_ "go.trai.ch/advent/internal/adapters/puzzles"
	_ "go.trai.ch/advent/internal/adapters/telemetry"
	_ "go.trai.ch/advent/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/advent/internal/app"
)
