package scene

import (
	"image/color"

	"github.com/Faultbox/movingcar/internal/vehicle"
	"github.com/Faultbox/movingcar/pkg/math"
)

// Shape is a filled convex polygon in viewport coordinates.
type Shape struct {
	Points []math.Vec2
	Color  color.NRGBA
}

// Style holds the colors and sizes used to draw a frame.
type Style struct {
	Background color.NRGBA
	Body       color.NRGBA
	Nose       color.NRGBA
	Marker     color.NRGBA
	MarkerSize float64
	GhostAlpha uint8
}

// DefaultStyle returns the stock palette: a blue car on white with amber
// edge markers.
func DefaultStyle() Style {
	return Style{
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Body:       color.NRGBA{R: 0x1a, G: 0x73, B: 0xe8, A: 0xff},
		Nose:       color.NRGBA{R: 0xd2, G: 0xe3, B: 0xfc, A: 0xff},
		Marker:     color.NRGBA{R: 0xf4, G: 0xb4, B: 0x00, A: 0xff},
		MarkerSize: 20,
		GhostAlpha: 88,
	}
}

// noseFraction is how far along the body the windshield starts.
const noseFraction = 0.75

// Shapes returns the frame as a back-to-front draw list: ghost, car, markers.
func (f Frame) Shapes(st Style) []Shape {
	if !f.Visible {
		return nil
	}
	shapes := make([]Shape, 0, 6)
	if f.Ghost != nil {
		shapes = append(shapes, carShapes(f.Footprint, f.Ghost.Pose, st, st.GhostAlpha)...)
	}
	shapes = append(shapes, carShapes(f.Footprint, f.Car, st, 0xff)...)

	half := st.MarkerSize / 2
	for _, m := range []*math.Vec2{f.Markers.Horizontal, f.Markers.Vertical} {
		if m == nil {
			continue
		}
		r := math.RectAround(*m, half, half)
		corners := r.Corners()
		shapes = append(shapes, Shape{Points: corners[:], Color: st.Marker})
	}
	return shapes
}

func carShapes(fp vehicle.Footprint, p vehicle.Pose, st Style, alpha uint8) []Shape {
	o := fp.Outline(p)
	nose := []math.Vec2{lerp(o[0], o[1], noseFraction), o[1], o[2], lerp(o[3], o[2], noseFraction)}
	return []Shape{
		{Points: o[:], Color: fade(st.Body, alpha)},
		{Points: nose, Color: fade(st.Nose, alpha)},
	}
}

func lerp(a, b math.Vec2, t float64) math.Vec2 {
	return a.Add(b.Sub(a).Scale(t))
}

func fade(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint16(c.A) * uint16(alpha) / 0xff)
	return c
}
