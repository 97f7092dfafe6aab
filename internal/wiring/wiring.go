// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/shopfront/internal/adapters/cartfile"
	_ "go.trai.ch/shopfront/internal/adapters/catalog"
	_ "go.trai.ch/shopfront/internal/adapters/config"
	_ "go.trai.ch/shopfront/internal/adapters/logger"
	_ "go.trai.ch/shopfront/internal/adapters/telemetry"
	_ "go.trai.ch/shopfront/internal/adapters/toast"
	// Register app nodes.
	_ "go.trai.ch/shopfront/internal/app"
)
