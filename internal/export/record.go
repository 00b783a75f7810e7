// Package export plays a scripted tap sequence headless and writes every
// frame as a PNG file.
package export

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/Faultbox/movingcar/internal/config"
	"github.com/Faultbox/movingcar/internal/path"
	"github.com/Faultbox/movingcar/internal/scene"
)

// maxRecording stops a script whose runs never settle.
const maxRecording = 10 * time.Minute

// ErrTooLong is returned when a recording exceeds maxRecording.
var ErrTooLong = errors.New("export: recording exceeds 10 minutes")

// Snapshot is one recorded frame.
type Snapshot struct {
	Index  int
	At     time.Duration
	Radius int
	Frame  scene.Frame
}

// Record runs the scene against a simulated clock at cfg.Export.FPS. Taps are
// applied at their exact script time, between frames if need be. Recording
// stops Tail after the last run completes.
func Record(cfg *config.Config, planner path.Planner) ([]Snapshot, error) {
	if cfg.Export.FPS <= 0 {
		return nil, fmt.Errorf("export: fps must be positive, got %d", cfg.Export.FPS)
	}
	fps := int64(cfg.Export.FPS)

	taps := slices.Clone(cfg.Export.Taps)
	slices.SortStableFunc(taps, func(a, b config.Tap) int {
		return cmp.Compare(a.At, b.At)
	})

	mock := clock.NewMock()
	origin := mock.Now()
	advance := func(to time.Duration) {
		if d := origin.Add(to).Sub(mock.Now()); d > 0 {
			mock.Add(d)
		}
	}

	s := scene.New(cfg.Vehicle, planner, mock)
	s.Layout(cfg.Export.Width, cfg.Export.Height)

	var (
		shots   []Snapshot
		next    int
		settled = time.Duration(-1)
	)
	for i := 0; ; i++ {
		at := frameTime(i, fps)
		if at > maxRecording {
			return nil, ErrTooLong
		}

		for next < len(taps) && taps[next].At <= at {
			tap := taps[next]
			advance(tap.At)
			s.Update()
			if err := s.MoveTo(tap.X, tap.Y); err != nil {
				return nil, fmt.Errorf("tap %d at %v: %w", next, tap.At, err)
			}
			next++
			settled = -1
		}

		advance(at)
		s.Update()
		shots = append(shots, Snapshot{Index: i, At: at, Radius: s.Radius(), Frame: s.Frame()})

		if next == len(taps) && !s.Animating() {
			if settled < 0 {
				settled = at
			}
			if at >= settled+cfg.Export.Tail {
				return shots, nil
			}
		}
	}
}

// frameTime returns the exact start of frame i.
func frameTime(i int, fps int64) time.Duration {
	return time.Duration(int64(i) * int64(time.Second) / fps)
}
