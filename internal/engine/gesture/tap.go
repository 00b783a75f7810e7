// Package gesture recognizes single taps from raw pointer events.
package gesture

import (
	"time"

	"github.com/Faultbox/movingcar/pkg/math"
)

// Defaults for tap recognition.
const (
	DefaultSlop    = 10.0
	DefaultTimeout = 300 * time.Millisecond
)

// TapRecognizer reports a tap when the pointer goes up close to where it went
// down, soon enough after. Dragging past the slop cancels the tap.
type TapRecognizer struct {
	Slop    float64
	Timeout time.Duration

	pressed bool
	moved   bool
	origin  math.Vec2
	downAt  time.Time
}

// NewTapRecognizer creates a recognizer with the default slop and timeout.
func NewTapRecognizer() *TapRecognizer {
	return &TapRecognizer{Slop: DefaultSlop, Timeout: DefaultTimeout}
}

// Down records a pointer press.
func (r *TapRecognizer) Down(x, y float64, at time.Time) {
	r.pressed = true
	r.moved = false
	r.origin = math.Vec2{X: x, Y: y}
	r.downAt = at
}

// Move tracks pointer motion while pressed.
func (r *TapRecognizer) Move(x, y float64) {
	if r.pressed && r.origin.Distance(math.Vec2{X: x, Y: y}) > r.Slop {
		r.moved = true
	}
}

// Up ends a press and returns the tap point if it qualified as a tap.
func (r *TapRecognizer) Up(x, y float64, at time.Time) (math.Vec2, bool) {
	if !r.pressed {
		return math.Vec2{}, false
	}
	r.pressed = false

	p := math.Vec2{X: x, Y: y}
	if r.moved || r.origin.Distance(p) > r.Slop || at.Sub(r.downAt) > r.Timeout {
		return math.Vec2{}, false
	}
	return p, true
}
