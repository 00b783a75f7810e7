package motion

import (
	"errors"
	gomath "math"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/Faultbox/movingcar/internal/logger"
	"github.com/Faultbox/movingcar/internal/vehicle"
)

// Start errors.
var (
	ErrNoWaypoints   = errors.New("motion: no waypoints")
	ErrInvalidSpeed  = errors.New("motion: speed must be positive")
	ErrInvalidLength = errors.New("motion: arc length must be finite and not negative")
)

// Player owns the car's authoritative pose and at most one active Run.
// Starting a run supersedes the previous one. Not safe for concurrent use:
// the frame loop drives it from a single goroutine.
type Player struct {
	clock      clock.Clock
	pose       vehicle.Pose
	generation uint64
	active     *Run
	listeners  []func(vehicle.Pose)
}

// NewPlayer creates a player timed by clk. A nil clk uses the wall clock.
func NewPlayer(clk clock.Clock) *Player {
	if clk == nil {
		clk = clock.New()
	}
	return &Player{clock: clk}
}

// OnPoseChanged registers fn to receive every published pose snapshot.
func (p *Player) OnPoseChanged(fn func(vehicle.Pose)) {
	p.listeners = append(p.listeners, fn)
}

// Pose returns the current pose.
func (p *Player) Pose() vehicle.Pose {
	return p.pose
}

// SetPose places the car without animating, e.g. on first layout.
func (p *Player) SetPose(pose vehicle.Pose) {
	p.publish(pose)
}

// Active returns the run in progress, or nil.
func (p *Player) Active() *Run {
	return p.active
}

// Animating reports whether a run is in progress.
func (p *Player) Animating() bool {
	return p.active != nil
}

// Start begins playing waypoints at speed units per second over arcLength.
// Any run in progress is superseded: its Tick becomes a no-op and its
// waypoints are released.
func (p *Player) Start(waypoints []vehicle.Pose, speed, arcLength float64) (*Run, error) {
	if len(waypoints) == 0 {
		return nil, ErrNoWaypoints
	}
	if !(speed > 0) {
		return nil, ErrInvalidSpeed
	}
	if !(arcLength >= 0) || gomath.IsInf(arcLength, 1) {
		return nil, ErrInvalidLength
	}

	if p.active != nil {
		logger.Motion.Debug("run superseded",
			zap.Uint64("generation", p.active.generation),
			zap.Int("index", p.active.index),
		)
		p.active.release()
	}

	p.generation++
	r := &Run{
		player:     p,
		generation: p.generation,
		waypoints:  waypoints,
		speed:      speed,
		arcLength:  arcLength,
		duration:   Duration(arcLength, speed),
		startedAt:  p.clock.Now(),
		index:      -1,
	}
	p.active = r

	logger.Motion.Debug("run started",
		zap.Uint64("generation", r.generation),
		zap.Int("waypoints", len(waypoints)),
		zap.Float64("length", arcLength),
		zap.Duration("duration", r.duration),
	)
	return r, nil
}

// Update ticks the active run with the fraction of its duration elapsed on
// the player's clock and returns the current pose. A finished run is released.
func (p *Player) Update() vehicle.Pose {
	r := p.active
	if r == nil {
		return p.pose
	}

	r.Tick(r.Fraction())
	if r.Done() {
		logger.Motion.Debug("run finished", zap.Uint64("generation", r.generation))
		p.active = nil
	}
	return p.pose
}

func (p *Player) publish(pose vehicle.Pose) {
	p.pose = pose
	for _, fn := range p.listeners {
		fn(pose)
	}
}

// Run is one playback of a finalized waypoint sequence.
type Run struct {
	player     *Player
	generation uint64
	waypoints  []vehicle.Pose
	speed      float64
	arcLength  float64
	duration   time.Duration
	startedAt  time.Time
	index      int
	done       bool
}

// Duration returns the playback length.
func (r *Run) Duration() time.Duration {
	return r.duration
}

// Waypoints returns the sequence being played, nil once superseded.
func (r *Run) Waypoints() []vehicle.Pose {
	return r.waypoints
}

// Index returns the last applied waypoint index, -1 before the first tick.
func (r *Run) Index() int {
	return r.index
}

// Done reports whether the run reached its end.
func (r *Run) Done() bool {
	return r.done
}

// Superseded reports whether a later Start replaced this run.
func (r *Run) Superseded() bool {
	return r.generation != r.player.generation
}

// Fraction returns elapsed wall time as a fraction of the duration, in [0,1].
// A zero-length run is complete immediately.
func (r *Run) Fraction() float64 {
	if r.duration <= 0 {
		return 1
	}
	elapsed := r.player.clock.Since(r.startedAt)
	return clampUnit(float64(elapsed) / float64(r.duration))
}

// Tick applies linear progress fraction (0..1) and returns the car's pose.
// The pose is published only when the selected waypoint changes.
// It returns false without touching the pose once the run is superseded.
func (r *Run) Tick(fraction float64) (vehicle.Pose, bool) {
	if r.Superseded() {
		return r.player.pose, false
	}

	fraction = clampUnit(fraction)
	i := Index(len(r.waypoints), Ease(fraction))
	if i < len(r.waypoints) && i != r.index {
		r.index = i
		r.player.publish(r.waypoints[i])
	}
	if fraction >= 1 {
		r.done = true
	}
	return r.player.pose, true
}

func (r *Run) release() {
	r.waypoints = nil
}
