package math

// Size is a width/height pair, typically the viewport.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. Y grows downwards, so Top <= Bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectAround returns the rectangle of the given half extents centered on c.
func RectAround(c Vec2, halfW, halfH float64) Rect {
	return Rect{
		Left:   c.X - halfW,
		Top:    c.Y - halfH,
		Right:  c.X + halfW,
		Bottom: c.Y + halfH,
	}
}

// Corners returns the corners clockwise starting at top-left.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{r.Left, r.Top},
		{r.Right, r.Top},
		{r.Right, r.Bottom},
		{r.Left, r.Bottom},
	}
}
