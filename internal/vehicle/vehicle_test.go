package vehicle

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/movingcar/pkg/math"
)

func TestPoseDegrees(t *testing.T) {
	tests := []struct {
		heading float64
		want    float64
	}{
		{0, 0},
		{gomath.Pi, 180},
		{HeadingUp, -90},
		{3 * gomath.Pi, 540}, // not normalized
	}
	for _, tt := range tests {
		got := NewPose(0, 0, tt.heading).Degrees()
		if gomath.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Degrees(%v) = %v, want %v", tt.heading, got, tt.want)
		}
	}
}

func TestPoseEqual(t *testing.T) {
	a := NewPose(1, 2, 0.5)
	if !a.Equal(NewPose(1, 2, 0.5)) {
		t.Error("identical poses should be equal")
	}
	if a.Equal(NewPose(1, 2, 0.5000001)) {
		t.Error("poses differing in heading should not be equal")
	}
}

func TestPoseHeadingTo(t *testing.T) {
	p := NewPose(100, 100, 0)
	if got := p.HeadingTo(100, 0); got != -gomath.Pi/2 {
		t.Errorf("HeadingTo straight up = %v, want -pi/2", got)
	}
	if got := p.HeadingTo(200, 100); got != 0 {
		t.Errorf("HeadingTo right = %v, want 0", got)
	}
}

func TestFootprintBounds(t *testing.T) {
	f := DefaultFootprint()

	got := f.Bounds(NewPose(200.4, 300.6, 1.2))
	want := math.Rect{Left: 136, Top: 271, Right: 264, Bottom: 331}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}

	// Heading does not rotate the rectangle.
	rotated := f.Bounds(NewPose(200.4, 300.6, gomath.Pi/2))
	if rotated != want {
		t.Errorf("Bounds() with rotation = %+v, want %+v", rotated, want)
	}
}

func TestCarPositionState(t *testing.T) {
	car := NewCar(DefaultFootprint())
	if !car.IsPositionUndefined() {
		t.Fatal("new car should have undefined position")
	}

	ghost := NewCar(DefaultFootprint())
	if car.IsPositionSameTo(ghost) {
		t.Error("undefined cars should not compare equal")
	}

	car.SetPose(NewPose(10, 20, 0))
	ghost.SetPose(NewPose(10, 20, 0))
	if car.IsPositionUndefined() {
		t.Error("position should be defined after SetPose")
	}
	if !car.IsPositionSameTo(ghost) {
		t.Error("cars at the same pose should compare equal")
	}
	if car.Bounds() != car.Footprint.Bounds(car.Pose()) {
		t.Error("cached bounds out of sync with pose")
	}

	ghost.SetPose(NewPose(10, 20, 1))
	if car.IsPositionSameTo(ghost) {
		t.Error("cars with different heading should not compare equal")
	}
}

func TestFootprintOutline(t *testing.T) {
	f := Footprint{Length: 100, Width: 40}

	const eps = 1e-9
	near := func(a, b math.Vec2) bool {
		return gomath.Abs(a.X-b.X) < eps && gomath.Abs(a.Y-b.Y) < eps
	}

	flat := f.Outline(NewPose(0, 0, 0))
	wantFlat := [4]math.Vec2{{X: -50, Y: -20}, {X: 50, Y: -20}, {X: 50, Y: 20}, {X: -50, Y: 20}}
	for i := range flat {
		if !near(flat[i], wantFlat[i]) {
			t.Errorf("heading 0 corner %d = %+v, want %+v", i, flat[i], wantFlat[i])
		}
	}

	// Pointing up: the front corners sit above the center.
	up := f.Outline(NewPose(200, 300, HeadingUp))
	wantUp := [4]math.Vec2{{X: 180, Y: 350}, {X: 180, Y: 250}, {X: 220, Y: 250}, {X: 220, Y: 350}}
	for i := range up {
		if !near(up[i], wantUp[i]) {
			t.Errorf("heading up corner %d = %+v, want %+v", i, up[i], wantUp[i])
		}
	}
}
