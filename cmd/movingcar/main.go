// Package main is the interactive moving car demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/movingcar/internal/app"
	"github.com/Faultbox/movingcar/internal/config"
	"github.com/Faultbox/movingcar/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.App.Info("=== Moving Car ===")
	logger.App.Debug("config loaded", zap.Any("config", cfg))

	a, err := app.New(cfg)
	if err != nil {
		logger.App.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.App.Error("demo error", zap.Error(err))
		os.Exit(1)
	}

	logger.App.Info("closed normally")
}
