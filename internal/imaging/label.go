package imaging

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawLabel centers text on tile using the 7x13 bitmap face.
// Labels that do not fit the tile are skipped.
func drawLabel(tile *image.NRGBA, text string, fg color.Color) {
	face := basicfont.Face7x13
	bounds := tile.Bounds()

	d := &font.Drawer{
		Dst:  tile,
		Src:  image.NewUniform(fg),
		Face: face,
	}

	width := d.MeasureString(text).Ceil()
	height := face.Metrics().Height.Ceil()
	if width+4 > bounds.Dx() || height+4 > bounds.Dy() {
		return
	}

	x := bounds.Min.X + (bounds.Dx()-width)/2
	// Dot is the baseline; shift down by the ascent so the glyphs are centered.
	y := bounds.Min.Y + (bounds.Dy()-height)/2 + face.Metrics().Ascent.Ceil()
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}
