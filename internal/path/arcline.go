package path

import (
	gomath "math"

	"github.com/Faultbox/movingcar/internal/vehicle"
	"github.com/Faultbox/movingcar/pkg/math"
)

// DefaultStep is the sampling distance between consecutive waypoints.
const DefaultStep = 10.0

// Tolerances for rounding noise: a sweep within turnEpsilon of a full circle is
// treated as no turn, and samples closer than sampleEpsilon to the end are dropped.
const (
	turnEpsilon   = 1e-6
	sampleEpsilon = 1e-9
)

// Turn directions, named as in y-up coordinates: left increases the heading.
// On a y-down screen a left turn looks clockwise.
const (
	left  = 1.0
	right = -1.0
)

// ArcLinePlanner builds arc, straight, arc curves between two poses: it tries
// the four turn combinations (LSL, RSR, LSR, RSL) and keeps the shortest one
// that exists. The curve ends on the end pose's heading. It does not consider
// the arc-arc-arc families, so it is not always the shortest possible curve.
type ArcLinePlanner struct {
	// Step is the arc-length spacing of samples. Zero means DefaultStep.
	Step float64
}

// NewArcLinePlanner creates a planner sampling every step units.
func NewArcLinePlanner(step float64) *ArcLinePlanner {
	return &ArcLinePlanner{Step: step}
}

// Plan implements Planner. reverseAllowed is ignored: the car only drives forward.
func (p *ArcLinePlanner) Plan(start, end vehicle.Pose, radius float64, _ bool) (Curve, error) {
	if radius <= 0 || gomath.IsNaN(radius) {
		return Curve{}, ErrInvalidRadius
	}
	step := p.Step
	if step <= 0 {
		step = DefaultStep
	}

	if end.Position().Distance(start.Position()) < sampleEpsilon {
		return Curve{}, nil
	}

	var (
		best  segment
		found bool
	)
	for _, turns := range [4][2]float64{{left, left}, {right, right}, {left, right}, {right, left}} {
		seg, ok := connect(start, end, radius, turns[0], turns[1])
		if ok && (!found || seg.length() < best.length()) {
			best, found = seg, true
		}
	}

	// Same-direction pairs always connect, so found is always true here.
	total := best.length()
	var points []vehicle.Pose
	for d := 0.0; d < total-sampleEpsilon; d += step {
		points = append(points, best.at(d))
	}
	return Curve{Points: points, Length: total}, nil
}

// segment is an arc around c1, a straight run, then an arc around c2.
type segment struct {
	start    vehicle.Pose
	radius   float64
	c1, c2   math.Vec2
	t1, t2   float64 // turn directions
	sweep1   float64 // radians, >= 0
	sweep2   float64
	heading  float64 // heading along the straight run
	straight float64
}

func (s segment) length() float64 {
	return s.radius*(s.sweep1+s.sweep2) + s.straight
}

func (s segment) at(d float64) vehicle.Pose {
	arc1 := s.radius * s.sweep1
	if d <= arc1 {
		return onCircle(s.c1, s.radius, s.t1, s.start.Heading+s.t1*d/s.radius)
	}

	exit := onCircle(s.c1, s.radius, s.t1, s.heading).Position()
	if d <= arc1+s.straight {
		pos := exit.Add(unit(s.heading).Scale(d - arc1))
		return vehicle.NewPose(pos.X, pos.Y, s.heading)
	}

	e := d - arc1 - s.straight
	return onCircle(s.c2, s.radius, s.t2, s.heading+s.t2*e/s.radius)
}

// onCircle returns the pose on the circle around c at the point where a car
// turning in direction turn faces heading.
func onCircle(c math.Vec2, radius, turn, heading float64) vehicle.Pose {
	pos := c.Add(unit(heading - turn*gomath.Pi/2).Scale(radius))
	return vehicle.NewPose(pos.X, pos.Y, heading)
}

// center returns the turning circle center for a car at p turning in direction turn.
func center(p vehicle.Pose, radius, turn float64) math.Vec2 {
	return p.Position().Add(unit(p.Heading + turn*gomath.Pi/2).Scale(radius))
}

// connect joins start and end with an arc in direction t1, a tangent line and
// an arc in direction t2. Mixed directions need the circles at least two
// radii apart.
func connect(start, end vehicle.Pose, radius, t1, t2 float64) (segment, bool) {
	c1 := center(start, radius, t1)
	c2 := center(end, radius, t2)
	between := c2.Sub(c1)
	dist := between.Length()

	var heading, straight float64
	switch {
	case t1 == t2 && dist < sampleEpsilon:
		heading = start.Heading
	case t1 == t2:
		heading = between.Angle()
		straight = dist
	case dist < 2*radius:
		return segment{}, false
	default:
		heading = between.Angle() + gomath.Asin(2*radius*t1/dist)
		straight = gomath.Sqrt(dist*dist - 4*radius*radius)
	}

	sweep1 := sweep(t1 * (heading - start.Heading))
	return segment{
		start:    start,
		radius:   radius,
		c1:       c1,
		c2:       c2,
		t1:       t1,
		t2:       t2,
		sweep1:   sweep1,
		sweep2:   sweep(t2 * (end.Heading - heading)),
		heading:  start.Heading + t1*sweep1, // continuous with the first arc
		straight: straight,
	}, true
}

// sweep normalizes a turn angle into [0, 2π), folding a near-full circle to 0.
func sweep(angle float64) float64 {
	a := gomath.Mod(angle, 2*gomath.Pi)
	if a < 0 {
		a += 2 * gomath.Pi
	}
	if a > 2*gomath.Pi-turnEpsilon {
		a = 0
	}
	return a
}

func unit(angle float64) math.Vec2 {
	return math.Vec2{X: 1}.Rotate(angle)
}
