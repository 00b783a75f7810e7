package edge

import (
	"testing"

	"github.com/Faultbox/movingcar/pkg/math"
)

func TestProject(t *testing.T) {
	viewport := math.Size{Width: 300, Height: 300}

	tests := []struct {
		name       string
		pos        math.Vec2
		bounds     math.Rect
		horizontal *math.Vec2
		vertical   *math.Vec2
	}{
		{
			name:   "partially visible",
			pos:    math.Vec2{X: 20, Y: 40},
			bounds: math.Rect{Left: -10, Top: 10, Right: 50, Bottom: 70},
		},
		{
			name:       "exited right",
			pos:        math.Vec2{X: 340, Y: 150},
			bounds:     math.Rect{Left: 310, Top: 140, Right: 370, Bottom: 160},
			horizontal: &math.Vec2{X: 300, Y: 150},
		},
		{
			name:       "exited left",
			pos:        math.Vec2{X: -80, Y: 120},
			bounds:     math.Rect{Left: -110, Top: 90, Right: -50, Bottom: 150},
			horizontal: &math.Vec2{X: 0, Y: 120},
		},
		{
			name:     "exited bottom",
			pos:      math.Vec2{X: 100, Y: 400},
			bounds:   math.Rect{Left: 70, Top: 370, Right: 130, Bottom: 430},
			vertical: &math.Vec2{X: 100, Y: 300},
		},
		{
			name:     "exited top with x clamped",
			pos:      math.Vec2{X: 290, Y: -100},
			bounds:   math.Rect{Left: 260, Top: -130, Right: 320, Bottom: -70},
			vertical: &math.Vec2{X: 290, Y: 0},
		},
		{
			name:       "exited through bottom-right corner",
			pos:        math.Vec2{X: 400, Y: 500},
			bounds:     math.Rect{Left: 370, Top: 470, Right: 430, Bottom: 530},
			horizontal: &math.Vec2{X: 300, Y: 300},
			vertical:   &math.Vec2{X: 300, Y: 300},
		},
		{
			name:       "exited top-left corner",
			pos:        math.Vec2{X: -200, Y: -200},
			bounds:     math.Rect{Left: -264, Top: -230, Right: -136, Bottom: -170},
			horizontal: &math.Vec2{X: 0, Y: 0},
			vertical:   &math.Vec2{X: 0, Y: 0},
		},
		{
			name:   "touching the edge is still visible",
			pos:    math.Vec2{X: 330, Y: 150},
			bounds: math.Rect{Left: 300, Top: 140, Right: 360, Bottom: 160},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Project(tt.pos, tt.bounds, viewport)
			checkMarker(t, "horizontal", m.Horizontal, tt.horizontal)
			checkMarker(t, "vertical", m.Vertical, tt.vertical)
			if m.Any() != (tt.horizontal != nil || tt.vertical != nil) {
				t.Errorf("Any() = %v", m.Any())
			}
		})
	}
}

func checkMarker(t *testing.T, name string, got, want *math.Vec2) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s marker = %v, want none", name, *got)
	case want != nil && got == nil:
		t.Errorf("%s marker missing, want %v", name, *want)
	case want != nil && *got != *want:
		t.Errorf("%s marker = %v, want %v", name, *got, *want)
	}
}
