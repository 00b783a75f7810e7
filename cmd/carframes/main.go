// Package main renders a scripted drive to numbered PNG frames.
//
// The script is the export.taps list of the config file, for example:
//
//	export:
//	  fps: 30
//	  tail: 1s
//	  taps:
//	    - {at: 0s, x: 600, y: 200}
//	    - {at: 1500ms, x: 100, y: 1100}
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/movingcar/internal/config"
	"github.com/Faultbox/movingcar/internal/export"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	started := time.Now()
	n, err := export.New(cfg, nil).Run(ctx)
	if err != nil {
		logger.App.Error("export failed", zap.Error(err))
		os.Exit(1)
	}

	logger.App.Info("export done",
		zap.Int("frames", n),
		zap.String("dir", cfg.Export.Dir),
		zap.Duration("took", time.Since(started)),
	)
}
