package vehicle

import (
	gomath "math"

	"github.com/Faultbox/movingcar/pkg/math"
)

// Default car footprint in viewport units.
const (
	DefaultLength = 129
	DefaultWidth  = 60
)

// DefaultSpeed is the travel speed in viewport units per second.
const DefaultSpeed = 520.0

// Footprint is the car's fixed size. Length runs along the heading.
type Footprint struct {
	Length int
	Width  int
}

// DefaultFootprint returns the stock car size.
func DefaultFootprint() Footprint {
	return Footprint{Length: DefaultLength, Width: DefaultWidth}
}

// Bounds returns the axis-aligned rectangle occupied by a car at pose p.
// The heading is ignored: rotation is applied only when drawing.
// The center is rounded to whole units and half extents use integer halves.
func (f Footprint) Bounds(p Pose) math.Rect {
	cx := gomath.Round(p.X)
	cy := gomath.Round(p.Y)
	return math.RectAround(
		math.Vec2{X: cx, Y: cy},
		float64(f.Length/2),
		float64(f.Width/2),
	)
}

// Car is a footprint placed at a pose.
type Car struct {
	Footprint Footprint

	pose    Pose
	bounds  math.Rect
	defined bool
}

// NewCar creates a car with no position yet.
func NewCar(footprint Footprint) *Car {
	return &Car{Footprint: footprint}
}

// SetPose moves the car and refreshes its bounds.
func (c *Car) SetPose(p Pose) {
	c.pose = p
	c.bounds = c.Footprint.Bounds(p)
	c.defined = true
}

// Pose returns the car's current pose.
func (c *Car) Pose() Pose {
	return c.pose
}

// Bounds returns the rectangle computed on the last SetPose.
func (c *Car) Bounds() math.Rect {
	return c.bounds
}

// IsPositionUndefined reports whether SetPose has never been called.
func (c *Car) IsPositionUndefined() bool {
	return !c.defined
}

// IsPositionSameTo reports whether both cars sit at exactly the same pose.
func (c *Car) IsPositionSameTo(other *Car) bool {
	if other == nil || !c.defined || !other.defined {
		return false
	}
	return c.pose.Equal(other.pose)
}

// Outline returns the car's corners at pose p, rotated by the heading around
// the pose position. Length lies along the heading, so a car pointing right
// (heading 0) matches Bounds. Corners run rear-left, front-left, front-right,
// rear-right.
func (f Footprint) Outline(p Pose) [4]math.Vec2 {
	halfL := float64(f.Length) / 2
	halfW := float64(f.Width) / 2
	center := p.Position()
	local := [4]math.Vec2{
		{X: -halfL, Y: -halfW},
		{X: halfL, Y: -halfW},
		{X: halfL, Y: halfW},
		{X: -halfL, Y: halfW},
	}
	var out [4]math.Vec2
	for i, c := range local {
		out[i] = center.Add(c.Rotate(p.Heading))
	}
	return out
}
