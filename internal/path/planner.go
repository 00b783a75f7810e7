// Package path turns planner output into the waypoint sequence the car animates along.
package path

import (
	"errors"

	"github.com/Faultbox/movingcar/internal/vehicle"
)

// ErrInvalidRadius is returned by planners for a non-positive turning radius.
var ErrInvalidRadius = errors.New("turning radius must be positive")

// Curve is a planner result: poses ordered from start towards end, sampled
// uniformly by arc length, plus the total arc length.
// Points may omit the exact end pose.
type Curve struct {
	Points []vehicle.Pose
	Length float64
}

// Planner produces a constant-turning-radius curve between two poses.
type Planner interface {
	Plan(start, end vehicle.Pose, radius float64, reverseAllowed bool) (Curve, error)
}

// PlannerFunc adapts a function to the Planner interface.
type PlannerFunc func(start, end vehicle.Pose, radius float64, reverseAllowed bool) (Curve, error)

// Plan calls f.
func (f PlannerFunc) Plan(start, end vehicle.Pose, radius float64, reverseAllowed bool) (Curve, error) {
	return f(start, end, radius, reverseAllowed)
}
