package imaging

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// lightBackground is the perceptual lightness (CIE L*, 0-1) above which dark
// text is easier to read than light text.
const lightBackground = 0.6

// ContrastColor returns black or white, whichever reads better as text
// drawn on top of bg.
func ContrastColor(bg color.Color) color.Color {
	if isLight(bg) {
		return color.Black
	}
	return color.White
}

// ContrastHex is ContrastColor formatted as "#000000" or "#FFFFFF".
func ContrastHex(bg color.Color) string {
	if isLight(bg) {
		return "#000000"
	}
	return "#FFFFFF"
}

func isLight(bg color.Color) bool {
	c, _ := colorful.MakeColor(bg)
	l, _, _ := c.Lab()
	return l > lightBackground
}
