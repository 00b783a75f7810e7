// Package edge computes viewport-edge markers for a car that has left the screen.
package edge

import "github.com/Faultbox/movingcar/pkg/math"

// Markers are the points glued to the viewport border. Nil means no marker.
type Markers struct {
	Horizontal *math.Vec2 // on the left or right edge
	Vertical   *math.Vec2 // on the top or bottom edge
}

// Any reports whether at least one marker is present.
func (m Markers) Any() bool {
	return m.Horizontal != nil || m.Vertical != nil
}

// Project returns the markers for a car at pos whose bounds are given.
//
// A horizontal marker appears once the bounds are entirely past the left or
// right edge, a vertical one once they are past the top or bottom edge.
// The marker tracks the car's other coordinate, clamped to the viewport.
func Project(pos math.Vec2, bounds math.Rect, viewport math.Size) Markers {
	var m Markers

	switch {
	case bounds.Left > viewport.Width:
		m.Horizontal = &math.Vec2{X: viewport.Width, Y: math.Clamp(pos.Y, 0, viewport.Height)}
	case bounds.Right < 0:
		m.Horizontal = &math.Vec2{X: 0, Y: math.Clamp(pos.Y, 0, viewport.Height)}
	}

	switch {
	case bounds.Top > viewport.Height:
		m.Vertical = &math.Vec2{X: math.Clamp(pos.X, 0, viewport.Width), Y: viewport.Height}
	case bounds.Bottom < 0:
		m.Vertical = &math.Vec2{X: math.Clamp(pos.X, 0, viewport.Width), Y: 0}
	}

	return m
}
