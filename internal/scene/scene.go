// Package scene is the car view: it turns taps into animated runs and exposes
// what has to be drawn each frame.
package scene

import (
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/Faultbox/movingcar/internal/config"
	"github.com/Faultbox/movingcar/internal/edge"
	"github.com/Faultbox/movingcar/internal/logger"
	"github.com/Faultbox/movingcar/internal/motion"
	"github.com/Faultbox/movingcar/internal/path"
	"github.com/Faultbox/movingcar/internal/vehicle"
	"github.com/Faultbox/movingcar/pkg/math"
)

// ErrNotLaidOut is returned by MoveTo before the first Layout.
var ErrNotLaidOut = errors.New("scene: viewport not laid out yet")

// Ghost is the destination drawn at reduced opacity.
type Ghost struct {
	Pose   vehicle.Pose
	Bounds math.Rect
}

// Frame is everything a renderer needs for one frame.
type Frame struct {
	Viewport  math.Size
	Footprint vehicle.Footprint
	Car       vehicle.Pose
	Bounds    math.Rect
	Ghost     *Ghost
	Markers   edge.Markers
	Visible   bool // false until the car has a position
}

// Scene holds the car, its destination and the animation player.
// Not safe for concurrent use.
type Scene struct {
	cfg     config.VehicleConfig
	planner path.Planner
	player  *motion.Player

	car         *vehicle.Car
	destination *vehicle.Car
	markers     edge.Markers
	viewport    math.Size
	laidOut     bool

	radius          int
	showDestination bool
}

// New creates a scene. A nil planner falls back to path.ArcLinePlanner,
// a nil clock to the wall clock.
func New(cfg config.VehicleConfig, planner path.Planner, clk clock.Clock) *Scene {
	if planner == nil {
		planner = path.NewArcLinePlanner(cfg.SampleStep)
	}
	footprint := cfg.Footprint()

	s := &Scene{
		cfg:             cfg,
		planner:         planner,
		player:          motion.NewPlayer(clk),
		car:             vehicle.NewCar(footprint),
		destination:     vehicle.NewCar(footprint),
		showDestination: cfg.ShowDestination,
	}
	s.SetRadius(cfg.Radius)
	s.player.OnPoseChanged(s.onPoseChanged)
	return s
}

// Layout sets the viewport size. The first call places the car at the
// center, pointing up.
func (s *Scene) Layout(width, height int) {
	s.viewport = math.Size{Width: float64(width), Height: float64(height)}
	s.laidOut = true

	if s.car.IsPositionUndefined() {
		start := vehicle.NewPose(float64(width/2), float64(height/2), vehicle.HeadingUp)
		logger.Scene.Debug("placing car", zap.Float64("x", start.X), zap.Float64("y", start.Y))
		s.player.SetPose(start)
		return
	}
	s.refreshMarkers()
}

// MoveTo starts driving to the tapped point. The destination heading points
// from the car to the tap. Any run in progress is replaced.
func (s *Scene) MoveTo(touchX, touchY float64) error {
	if !s.laidOut || s.car.IsPositionUndefined() {
		return ErrNotLaidOut
	}

	current := s.player.Pose()
	dest := vehicle.NewPose(touchX, touchY, current.HeadingTo(touchX, touchY))
	s.destination.SetPose(dest)

	curve, err := s.planner.Plan(current, dest, float64(s.radius), false)
	if err != nil {
		// Recover as an empty curve: the car snaps to the destination.
		logger.Scene.Warn("planner failed", zap.Error(err), zap.Int("radius", s.radius))
		curve = path.Curve{}
	}

	waypoints := path.Finalize(curve.Points, dest)
	logger.Scene.Debug("move requested",
		zap.Float64("x", touchX),
		zap.Float64("y", touchY),
		zap.Int("radius", s.radius),
		zap.Int("waypoints", len(waypoints)),
		zap.Float64("length", curve.Length),
	)

	if _, err := s.player.Start(waypoints, s.cfg.Speed, curve.Length); err != nil {
		return fmt.Errorf("starting run: %w", err)
	}
	return nil
}

// Update advances the animation to the player's clock.
func (s *Scene) Update() {
	s.player.Update()
}

// Animating reports whether the car is moving.
func (s *Scene) Animating() bool {
	return s.player.Animating()
}

// Pose returns the car's current pose.
func (s *Scene) Pose() vehicle.Pose {
	return s.player.Pose()
}

// Frame snapshots the current state for drawing.
func (s *Scene) Frame() Frame {
	f := Frame{
		Viewport:  s.viewport,
		Footprint: s.car.Footprint,
		Car:       s.car.Pose(),
		Bounds:    s.car.Bounds(),
		Markers:   s.markers,
		Visible:   !s.car.IsPositionUndefined(),
	}
	if s.showDestination && !s.destination.IsPositionUndefined() && !s.car.IsPositionSameTo(s.destination) {
		f.Ghost = &Ghost{
			Pose:   s.destination.Pose(),
			Bounds: s.destination.Bounds(),
		}
	}
	return f
}

// Radius returns the turning radius used for the next request.
func (s *Scene) Radius() int {
	return s.radius
}

// SetRadius changes the turning radius. Values below 1 become 1.
func (s *Scene) SetRadius(radius int) {
	if radius < 1 {
		radius = 1
	}
	s.radius = radius
}

// AdjustRadius moves the radius by whole steps of the radius control and
// returns the new radius.
func (s *Scene) AdjustRadius(steps int) int {
	progress := ProgressFromRadius(s.radius, s.cfg.MaxRadius) + steps
	progress = min(max(progress, 0), 100)
	s.SetRadius(RadiusFromProgress(progress, s.cfg.MaxRadius))
	return s.radius
}

// ShowDestination reports whether the destination ghost is drawn.
func (s *Scene) ShowDestination() bool {
	return s.showDestination
}

// SetShowDestination toggles the destination ghost.
func (s *Scene) SetShowDestination(show bool) {
	s.showDestination = show
}

func (s *Scene) onPoseChanged(pose vehicle.Pose) {
	s.car.SetPose(pose)
	s.refreshMarkers()
}

func (s *Scene) refreshMarkers() {
	if s.car.IsPositionUndefined() {
		s.markers = edge.Markers{}
		return
	}
	s.markers = edge.Project(s.car.Pose().Position(), s.car.Bounds(), s.viewport)
}
