// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lambdazip/internal/adapters/collector"
	_ "go.trai.ch/lambdazip/internal/adapters/config"
	_ "go.trai.ch/lambdazip/internal/adapters/fs"
	_ "go.trai.ch/lambdazip/internal/adapters/logger"
	_ "go.trai.ch/lambdazip/internal/adapters/sandbox"
	_ "go.trai.ch/lambdazip/internal/adapters/shell"
	_ "go.trai.ch/lambdazip/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/lambdazip/internal/app"
	_ "go.trai.ch/lambdazip/internal/engine/packager"
)
