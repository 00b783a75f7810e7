package export

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/movingcar/internal/config"
	"github.com/Faultbox/movingcar/internal/logger"
	"github.com/Faultbox/movingcar/internal/path"
	"github.com/Faultbox/movingcar/internal/scene"
)

// FileName returns the PNG name for frame i.
func FileName(i int) string {
	return fmt.Sprintf("frame_%05d.png", i)
}

// Exporter records a script and writes its frames.
type Exporter struct {
	cfg     *config.Config
	planner path.Planner
	style   scene.Style
	log     *zap.Logger
}

// New creates an exporter. A nil planner uses the scene default.
func New(cfg *config.Config, planner path.Planner) *Exporter {
	return &Exporter{
		cfg:     cfg,
		planner: planner,
		style:   scene.DefaultStyle(),
		log:     logger.Export.L(),
	}
}

// Run records the script and writes one PNG per frame into the export
// directory. Simulation is sequential; drawing and encoding run on up to
// Export.Workers goroutines. It returns the number of frames written.
func (e *Exporter) Run(ctx context.Context) (int, error) {
	shots, err := Record(e.cfg, e.planner)
	if err != nil {
		return 0, err
	}

	dir := e.cfg.Export.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating %s: %w", dir, err)
	}
	e.log.Info("recorded script",
		zap.Int("frames", len(shots)),
		zap.Int("taps", len(e.cfg.Export.Taps)),
		zap.String("dir", dir),
	)

	workers := max(e.cfg.Export.Workers, 1)
	width, height := e.cfg.Export.Width, e.cfg.Export.Height

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, shot := range shots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img := Draw(shot, e.style, width, height)
			return writePNG(filepath.Join(dir, FileName(shot.Index)), img)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	e.log.Info("frames written", zap.Int("count", len(shots)), zap.Int("workers", workers))
	return len(shots), nil
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return f.Close()
}
