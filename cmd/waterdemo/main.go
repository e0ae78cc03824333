// Package main is the entry point for the terrain and water demo.
package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/waterscape/internal/config"
	"github.com/Faultbox/waterscape/internal/engine/render"
	"github.com/Faultbox/waterscape/internal/game"
	"github.com/Faultbox/waterscape/internal/logger"
	"github.com/Faultbox/waterscape/pkg/formats"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, path, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if dump := config.DumpPath(); dump != "" {
		if err := cfg.SaveTo(dump); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return 1
		}
		if dump != "-" {
			fmt.Printf("config written to %s\n", dump)
		}
		return 0
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Waterscape ===", zap.String("config", path))
	if logger.Enabled(zapcore.DebugLevel) {
		var b strings.Builder
		if _, err := cfg.WriteTo(&b); err == nil {
			logger.Sugar.Debugf("effective config:\n%s", b.String())
		}
	}

	// Create and run the demo
	g, err := game.New(cfg, path)
	if err != nil {
		logger.Error("failed to create demo", zap.String("kind", errorKind(err)), zap.Error(err))
		return 1
	}
	defer g.Close()

	// Run the main loop
	if err := g.Run(); err != nil {
		logger.Error("demo error", zap.String("kind", errorKind(err)), zap.Error(err))
		return 1
	}

	logger.Info("demo closed normally")
	return 0
}

func errorKind(err error) string {
	switch {
	case formats.IsAssetError(err):
		return "asset"
	case render.IsConfigurationError(err):
		return "configuration"
	default:
		return "runtime"
	}
}
