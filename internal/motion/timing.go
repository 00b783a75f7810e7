// Package motion plays a waypoint sequence back over time.
package motion

import (
	gomath "math"
	"time"
)

// Ease maps linear progress to accelerate/decelerate progress.
// Ease(0)=0, Ease(0.5)=0.5, Ease(1)=1, monotonic in between.
func Ease(t float64) float64 {
	t = clampUnit(t)
	return gomath.Cos((t+1)*gomath.Pi)/2 + 0.5
}

// MaxDuration is the longest run Duration reports, in whole seconds.
const MaxDuration = time.Duration(gomath.MaxInt64/int64(time.Second)) * time.Second

// Duration returns how long a run of arcLength takes at speed, rounded to whole
// seconds. Results past MaxDuration saturate; NaN and negative inputs give 0.
func Duration(arcLength, speed float64) time.Duration {
	secs := gomath.Round(arcLength / speed)
	switch {
	case secs >= MaxDuration.Seconds():
		return MaxDuration
	case !(secs > 0):
		return 0
	}
	return time.Duration(secs) * time.Second
}

// Index selects the waypoint for eased progress over n waypoints.
// At eased == 1 it lands on n-1.
func Index(n int, eased float64) int {
	return int(gomath.Round(float64(n-1) * eased))
}

func clampUnit(t float64) float64 {
	if gomath.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
