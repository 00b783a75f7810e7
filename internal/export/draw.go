package export

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/Faultbox/movingcar/internal/scene"
)

var captionColor = color.NRGBA{R: 0x5f, G: 0x63, B: 0x68, A: 0xff}

// Draw renders a snapshot into a width x height image with a short caption
// in the top-left corner.
func Draw(shot Snapshot, st scene.Style, width, height int) image.Image {
	dc := gg.NewContext(width, height)
	dc.SetColor(st.Background)
	dc.Clear()

	for _, s := range shot.Frame.Shapes(st) {
		if len(s.Points) < 3 {
			continue
		}
		dc.NewSubPath()
		dc.MoveTo(s.Points[0].X, s.Points[0].Y)
		for _, p := range s.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
		dc.SetColor(s.Color)
		dc.Fill()
	}

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(captionColor)
	dc.DrawString(caption(shot), 8, 20)

	return dc.Image()
}

func caption(shot Snapshot) string {
	return fmt.Sprintf("t=%.2fs radius=%d", shot.At.Seconds(), shot.Radius)
}
