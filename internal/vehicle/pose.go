// Package vehicle provides the car's pose and footprint.
package vehicle

import (
	gomath "math"

	"github.com/Faultbox/movingcar/pkg/math"
)

// HeadingUp points towards the top of the viewport (0 is along +X, Y grows down).
const HeadingUp = -gomath.Pi / 2

// Pose is a position plus heading in radians.
// The heading is kept exactly as produced by the planner and is never normalized.
type Pose struct {
	X       float64
	Y       float64
	Heading float64
}

// NewPose creates a pose.
func NewPose(x, y, heading float64) Pose {
	return Pose{X: x, Y: y, Heading: heading}
}

// Position returns the pose's location.
func (p Pose) Position() math.Vec2 {
	return math.Vec2{X: p.X, Y: p.Y}
}

// Degrees returns the heading converted for rotation at draw time.
func (p Pose) Degrees() float64 {
	return p.Heading * 180 / gomath.Pi
}

// Equal reports exact field equality.
func (p Pose) Equal(other Pose) bool {
	return p == other
}

// HeadingTo returns the direction from p to the target point.
func (p Pose) HeadingTo(x, y float64) float64 {
	return gomath.Atan2(y-p.Y, x-p.X)
}
