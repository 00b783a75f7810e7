package path

import "github.com/Faultbox/movingcar/internal/vehicle"

// Finalize returns raw with destination appended as the last waypoint.
//
// Planners sample by arc length and routinely stop one step short of the end,
// so the destination is appended unconditionally, even when the last raw point
// already equals it. The result is never empty and raw is not modified.
func Finalize(raw []vehicle.Pose, destination vehicle.Pose) []vehicle.Pose {
	waypoints := make([]vehicle.Pose, len(raw), len(raw)+1)
	copy(waypoints, raw)
	return append(waypoints, destination)
}
