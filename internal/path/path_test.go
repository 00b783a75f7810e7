package path

import (
	gomath "math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Faultbox/movingcar/internal/vehicle"
)

func TestFinalize(t *testing.T) {
	dest := vehicle.NewPose(300, 40, 0.25)

	tests := []struct {
		name string
		raw  []vehicle.Pose
		want []vehicle.Pose
	}{
		{
			name: "appends destination",
			raw:  []vehicle.Pose{{X: 0, Y: 0}, {X: 10, Y: 0}},
			want: []vehicle.Pose{{X: 0, Y: 0}, {X: 10, Y: 0}, dest},
		},
		{
			name: "keeps duplicate end point",
			raw:  []vehicle.Pose{{X: 0, Y: 0}, dest},
			want: []vehicle.Pose{{X: 0, Y: 0}, dest, dest},
		},
		{
			name: "empty raw path",
			raw:  nil,
			want: []vehicle.Pose{dest},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Finalize(tt.raw, dest)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Finalize() mismatch (-want +got):\n%s", diff)
			}
			if len(got) != len(tt.raw)+1 {
				t.Errorf("len = %d, want %d", len(got), len(tt.raw)+1)
			}
		})
	}
}

func TestFinalizeDoesNotAliasInput(t *testing.T) {
	raw := make([]vehicle.Pose, 2, 8)
	raw[0] = vehicle.NewPose(1, 1, 0)
	raw[1] = vehicle.NewPose(2, 2, 0)

	a := Finalize(raw, vehicle.NewPose(5, 5, 0))
	b := Finalize(raw, vehicle.NewPose(9, 9, 0))

	if a[2] != vehicle.NewPose(5, 5, 0) {
		t.Errorf("first result was overwritten: %v", a[2])
	}
	if b[2] != vehicle.NewPose(9, 9, 0) {
		t.Errorf("second result = %v", b[2])
	}
}

func TestArcLinePlannerEndsAtDestination(t *testing.T) {
	const radius = 200.0
	planner := NewArcLinePlanner(DefaultStep)
	start := vehicle.NewPose(360, 640, vehicle.HeadingUp)

	tests := []struct {
		name string
		end  vehicle.Pose
	}{
		{"dead ahead", vehicle.NewPose(360, 100, start.HeadingTo(360, 100))},
		{"to the right", vehicle.NewPose(700, 640, start.HeadingTo(700, 640))},
		{"to the left", vehicle.NewPose(20, 640, start.HeadingTo(20, 640))},
		{"behind", vehicle.NewPose(360, 1200, start.HeadingTo(360, 1200))},
		{"inside the right turning circle", vehicle.NewPose(380, 600, start.HeadingTo(380, 600))},
		{"far corner", vehicle.NewPose(900, 50, start.HeadingTo(900, 50))},
		{"u-turn", vehicle.NewPose(760, 640, gomath.Pi/2)},
		{"parallel park", vehicle.NewPose(420, 300, vehicle.HeadingUp)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := tt.end
			curve, err := planner.Plan(start, end, radius, false)
			if err != nil {
				t.Fatalf("Plan() error: %v", err)
			}
			if len(curve.Points) == 0 {
				t.Fatal("Plan() returned no points")
			}
			if curve.Points[0].Position().Distance(start.Position()) > 1e-9 {
				t.Errorf("first point = %v, want start", curve.Points[0])
			}

			waypoints := Finalize(curve.Points, end)
			if waypoints[len(waypoints)-1] != end {
				t.Error("finalized path does not end at destination")
			}

			// Uniform sampling: the last raw sample is within one step of the target.
			last := curve.Points[len(curve.Points)-1]
			if d := last.Position().Distance(end.Position()); d > DefaultStep+1e-6 {
				t.Errorf("last sample %.3f from target, want <= step", d)
			}

			// The last sample already faces (almost) the destination heading, so the
			// appended destination does not visibly snap the car around.
			turn := gomath.Abs(gomath.Remainder(last.Heading-end.Heading, 2*gomath.Pi))
			if limit := DefaultStep/radius + 1e-6; turn > limit {
				t.Errorf("last sample heading off by %.4f rad, want <= %.4f", turn, limit)
			}

			// Consecutive samples never exceed the step (chords are shorter than arcs).
			for i := 1; i < len(curve.Points); i++ {
				if d := curve.Points[i].Position().Distance(curve.Points[i-1].Position()); d > DefaultStep+1e-6 {
					t.Errorf("gap %.3f at %d exceeds step", d, i)
					break
				}
			}

			want := float64(len(curve.Points)) * DefaultStep
			if curve.Length > want+1e-6 || curve.Length <= want-DefaultStep {
				t.Errorf("length %.3f inconsistent with %d samples", curve.Length, len(curve.Points))
			}
		})
	}
}

func TestArcLinePlannerPicksShortest(t *testing.T) {
	// Same heading, target off to the side: an S-bend (LSR/RSL) beats looping
	// around with a same-direction pair.
	planner := NewArcLinePlanner(DefaultStep)
	start := vehicle.NewPose(0, 0, 0)
	end := vehicle.NewPose(1000, 100, 0)

	curve, err := planner.Plan(start, end, 100, false)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	straight := end.Position().Distance(start.Position())
	if curve.Length < straight || curve.Length > straight+20 {
		t.Errorf("Length = %.3f, want just over the straight-line %.3f", curve.Length, straight)
	}
}

func TestArcLinePlannerStraightAhead(t *testing.T) {
	planner := NewArcLinePlanner(10)
	start := vehicle.NewPose(0, 0, 0)
	curve, err := planner.Plan(start, vehicle.NewPose(100, 0, 0), 50, false)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if gomath.Abs(curve.Length-100) > 1e-6 {
		t.Errorf("Length = %v, want 100", curve.Length)
	}
	if len(curve.Points) != 10 {
		t.Errorf("len(Points) = %d, want 10 (end point omitted)", len(curve.Points))
	}
	for _, p := range curve.Points {
		if gomath.Abs(p.Y) > 1e-6 || gomath.Abs(p.Heading) > 1e-9 {
			t.Errorf("point %v left the straight line", p)
		}
	}
}

func TestArcLinePlannerQuarterTurn(t *testing.T) {
	// A quarter turn of radius 100 ends at (100,100) facing down, then 100 straight.
	planner := NewArcLinePlanner(1)
	start := vehicle.NewPose(0, 0, 0)
	curve, err := planner.Plan(start, vehicle.NewPose(100, 200, gomath.Pi/2), 100, false)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	want := 100*gomath.Pi/2 + 100
	if gomath.Abs(curve.Length-want) > 1e-6 {
		t.Errorf("Length = %v, want %v", curve.Length, want)
	}
	last := curve.Points[len(curve.Points)-1]
	if gomath.Abs(last.Heading-gomath.Pi/2) > 1e-9 {
		t.Errorf("final heading = %v, want pi/2", last.Heading)
	}
}

func TestArcLinePlannerZeroDistance(t *testing.T) {
	planner := NewArcLinePlanner(DefaultStep)
	start := vehicle.NewPose(50, 50, 1)
	curve, err := planner.Plan(start, start, 200, false)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if curve.Length != 0 || len(curve.Points) != 0 {
		t.Errorf("Plan() = %+v, want empty curve", curve)
	}

	waypoints := Finalize(curve.Points, start)
	if len(waypoints) != 1 || waypoints[0] != start {
		t.Errorf("Finalize() = %v, want [start]", waypoints)
	}
}

func TestArcLinePlannerInvalidRadius(t *testing.T) {
	planner := NewArcLinePlanner(0)
	for _, r := range []float64{0, -5, gomath.NaN()} {
		if _, err := planner.Plan(vehicle.Pose{}, vehicle.NewPose(10, 10, 0), r, false); err != ErrInvalidRadius {
			t.Errorf("Plan(radius=%v) error = %v, want ErrInvalidRadius", r, err)
		}
	}
}

func TestPlannerFunc(t *testing.T) {
	var called bool
	var p Planner = PlannerFunc(func(start, end vehicle.Pose, radius float64, reverse bool) (Curve, error) {
		called = true
		return Curve{Points: []vehicle.Pose{start}, Length: radius}, nil
	})
	curve, err := p.Plan(vehicle.Pose{}, vehicle.Pose{}, 7, false)
	if err != nil || !called || curve.Length != 7 {
		t.Errorf("PlannerFunc.Plan() = %+v, %v (called=%v)", curve, err, called)
	}
}
