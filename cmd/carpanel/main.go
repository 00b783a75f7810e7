// Package main is the moving car demo with an ImGui control panel.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/movingcar/internal/config"
	"github.com/Faultbox/movingcar/internal/logger"
	"github.com/Faultbox/movingcar/internal/panel"
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

	p, err := panel.New(cfg)
	if err != nil {
		logger.App.Error("failed to start panel", zap.Error(err))
		os.Exit(1)
	}
	p.Run()
}
