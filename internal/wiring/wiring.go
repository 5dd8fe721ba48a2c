// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/casebuild/internal/adapters/caseconfig"
	_ "go.trai.ch/casebuild/internal/adapters/logger"
	_ "go.trai.ch/casebuild/internal/adapters/shell"
	_ "go.trai.ch/casebuild/internal/adapters/telemetry"
	_ "go.trai.ch/casebuild/internal/adapters/teststatus"
	// Register app and engine nodes.
	_ "go.trai.ch/casebuild/internal/app"
	_ "go.trai.ch/casebuild/internal/engine/builder"
	_ "go.trai.ch/casebuild/internal/engine/cleaner"
	_ "go.trai.ch/casebuild/internal/engine/testdriver"
)
