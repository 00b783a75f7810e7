package scene

import gomath "math"

// RadiusFromProgress maps a 0..100 control position to a turning radius.
// The scale is maxRadius/100 in whole units and never returns less than 1.
func RadiusFromProgress(progress, maxRadius int) int {
	r := maxRadius / 100 * progress
	if r == 0 {
		r++
	}
	return r
}

// ProgressFromRadius maps a radius back to the 0..100 control position.
func ProgressFromRadius(radius, maxRadius int) int {
	if maxRadius <= 0 {
		return 0
	}
	return int(gomath.Round(float64(radius) / float64(maxRadius) * 100))
}

// RadiusControl tracks a radius slider. Drag only updates the pending value;
// Commit reports it once the user lets go, so a drag produces one replan.
type RadiusControl struct {
	maxRadius int
	applied   int
	pending   int
}

// NewRadiusControl starts the control at the radius currently applied.
func NewRadiusControl(radius, maxRadius int) *RadiusControl {
	return &RadiusControl{maxRadius: maxRadius, applied: radius, pending: radius}
}

// Progress returns the slider position for the pending radius.
func (c *RadiusControl) Progress() int {
	return ProgressFromRadius(c.pending, c.maxRadius)
}

// Drag records a new slider position.
func (c *RadiusControl) Drag(progress int) {
	c.pending = RadiusFromProgress(progress, c.maxRadius)
}

// Pending returns the radius shown while dragging.
func (c *RadiusControl) Pending() int { return c.pending }

// Commit returns the pending radius and whether it differs from the one last
// committed.
func (c *RadiusControl) Commit() (int, bool) {
	if c.pending == c.applied {
		return c.applied, false
	}
	c.applied = c.pending
	return c.applied, true
}
