// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ppd/internal/adapters/config"
	_ "go.trai.ch/ppd/internal/adapters/history"
	_ "go.trai.ch/ppd/internal/adapters/install"
	_ "go.trai.ch/ppd/internal/adapters/journal"
	_ "go.trai.ch/ppd/internal/adapters/launcher"
	_ "go.trai.ch/ppd/internal/adapters/logger"
	_ "go.trai.ch/ppd/internal/adapters/scripting"
	_ "go.trai.ch/ppd/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/ppd/internal/app"
	_ "go.trai.ch/ppd/internal/engine/decision"
	_ "go.trai.ch/ppd/internal/engine/probe"
	_ "go.trai.ch/ppd/internal/engine/signature"
)
