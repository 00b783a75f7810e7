package export

import (
	"context"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/movingcar/internal/config"
	"github.com/Faultbox/movingcar/internal/path"
	"github.com/Faultbox/movingcar/internal/scene"
	"github.com/Faultbox/movingcar/internal/vehicle"
)

// straightPlanner yields a bare curve of the given length, so runs last
// length/speed seconds.
func straightPlanner(length float64) path.Planner {
	return path.PlannerFunc(func(start, _ vehicle.Pose, _ float64, _ bool) (path.Curve, error) {
		return path.Curve{Points: []vehicle.Pose{start}, Length: length}, nil
	})
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Export.Dir = t.TempDir()
	cfg.Export.FPS = 10
	cfg.Export.Workers = 2
	cfg.Export.Tail = time.Second
	return cfg
}

func TestRecordWithoutTaps(t *testing.T) {
	cfg := testConfig(t)
	cfg.Export.Tail = 500 * time.Millisecond

	shots, err := Record(cfg, nil)
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if len(shots) != 6 {
		t.Fatalf("Record() = %d frames, want 6", len(shots))
	}
	start := vehicle.NewPose(360, 640, vehicle.HeadingUp)
	for _, s := range shots {
		if s.Frame.Car != start {
			t.Errorf("frame %d: car at %v, want %v", s.Index, s.Frame.Car, start)
		}
	}
	if got := shots[5].At; got != 500*time.Millisecond {
		t.Errorf("last frame at %v, want 500ms", got)
	}
}

func TestRecordSingleTap(t *testing.T) {
	cfg := testConfig(t)
	cfg.Export.Taps = []config.Tap{{At: 0, X: 360, Y: 100}}

	shots, err := Record(cfg, straightPlanner(cfg.Vehicle.Speed))
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	// One second of driving, then one second of tail.
	if len(shots) != 21 {
		t.Fatalf("Record() = %d frames, want 21", len(shots))
	}
	if got := shots[0].Frame.Car; got != vehicle.NewPose(360, 640, vehicle.HeadingUp) {
		t.Errorf("first frame car = %v, want start pose", got)
	}
	want := vehicle.NewPose(360, 100, vehicle.HeadingUp)
	for _, s := range shots[10:] {
		if s.Frame.Car != want {
			t.Errorf("frame %d: car at %v, want %v", s.Index, s.Frame.Car, want)
		}
	}
}

func TestRecordSortsTaps(t *testing.T) {
	cfg := testConfig(t)
	cfg.Export.Tail = 0
	cfg.Export.Taps = []config.Tap{
		{At: 450 * time.Millisecond, X: 100, Y: 640},
		{At: 0, X: 360, Y: 100},
	}

	shots, err := Record(cfg, straightPlanner(cfg.Vehicle.Speed))
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	last := shots[len(shots)-1]
	if last.Frame.Car.X != 100 || last.Frame.Car.Y != 640 {
		t.Errorf("final car = %v, want (100,640)", last.Frame.Car)
	}
	// The second run starts at 450ms and lasts one second.
	if last.At != 1500*time.Millisecond {
		t.Errorf("recording ended at %v, want 1.5s", last.At)
	}
}

func TestRecordRejectsBadFPS(t *testing.T) {
	cfg := testConfig(t)
	cfg.Export.FPS = 0
	if _, err := Record(cfg, nil); err == nil {
		t.Error("expected an error for fps 0")
	}
}

func TestDraw(t *testing.T) {
	fp := vehicle.DefaultFootprint()
	pose := vehicle.NewPose(50, 50, vehicle.HeadingUp)
	shot := Snapshot{
		Frame: scene.Frame{Footprint: fp, Car: pose, Bounds: fp.Bounds(pose), Visible: true},
	}
	st := scene.DefaultStyle()

	img := Draw(shot, st, 100, 100)
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("image size = %v, want 100x100", b)
	}

	body := color.RGBAModel.Convert(st.Body)
	if got := img.At(50, 50); got != body {
		t.Errorf("car center = %v, want body %v", got, body)
	}
	bg := color.RGBAModel.Convert(st.Background)
	if got := img.At(2, 95); got != bg {
		t.Errorf("corner = %v, want background %v", got, bg)
	}
}

func TestRunWritesFrames(t *testing.T) {
	cfg := testConfig(t)
	cfg.Export.Width = 64
	cfg.Export.Height = 64
	cfg.Export.Tail = 300 * time.Millisecond

	n, err := New(cfg, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if n != 4 {
		t.Fatalf("Run() wrote %d frames, want 4", n)
	}

	for i := range n {
		if _, err := os.Stat(filepath.Join(cfg.Export.Dir, FileName(i))); err != nil {
			t.Errorf("frame %d missing: %v", i, err)
		}
	}
	if _, err := os.Stat(filepath.Join(cfg.Export.Dir, FileName(n))); !os.IsNotExist(err) {
		t.Errorf("unexpected extra frame %s", FileName(n))
	}

	f, err := os.Open(filepath.Join(cfg.Export.Dir, FileName(0)))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding frame: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("frame size = %v, want 64x64", b)
	}
}

func TestRunCancelled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Export.Width = 16
	cfg.Export.Height = 16

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(cfg, nil).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(42); got != "frame_00042.png" {
		t.Errorf("FileName(42) = %q", got)
	}
}
