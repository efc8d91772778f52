package color

import (
	"fmt"
	"math"
)

// CMYKFromRGB converts decimal RGB channels to CMYK.
//
// The conversion follows the standard algorithm:
//  1. Pure black (0,0,0) maps to C=0, M=0, Y=0, K=1
//  2. C' = 1-R/255, M' = 1-G/255, Y' = 1-B/255
//  3. K = min(C', M', Y')
//  4. C = (C'-K)/(1-K), likewise for M and Y
//  5. All four components are rounded to one decimal place
//
// Returns an error wrapping ErrInvalidInput if any channel is outside 0-255.
func CMYKFromRGB(r, g, b int) (CMYK, error) {
	for _, v := range [3]int{r, g, b} {
		if v < 0 || v > 255 {
			return CMYK{}, fmt.Errorf("%w: rgb(%d,%d,%d) has a channel outside 0-255",
				ErrInvalidInput, r, g, b)
		}
	}
	return cmykFromRGB(r, g, b), nil
}

func cmykFromRGB(r, g, b int) CMYK {
	if r == 0 && g == 0 && b == 0 {
		return CMYK{C: 0, M: 0, Y: 0, K: 1}
	}

	c := 1 - float64(r)/255
	m := 1 - float64(g)/255
	y := 1 - float64(b)/255
	k := math.Min(c, math.Min(m, y))

	return CMYK{
		C: roundTenth((c - k) / (1 - k)),
		M: roundTenth((m - k) / (1 - k)),
		Y: roundTenth((y - k) / (1 - k)),
		K: roundTenth(k),
	}
}

// HSVFromRGB converts decimal RGB channels (0-255) to HSV.
//
// V is max/255 and S is (max-min)/max, or 0 for black. Hue is chosen by the
// dominant channel and expressed as a fraction of a turn in [0, 1):
//   - red:   ((G-B)/d + (6 if G<B)) / 6
//   - green: ((B-R)/d + 2) / 6
//   - blue:  ((R-G)/d + 4) / 6
//
// Grays (max == min) have hue 0.
func HSVFromRGB(r, g, b int) HSV {
	rf, gf, bf := float64(r), float64(g), float64(b)
	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	d := max - min

	hsv := HSV{V: max / 255}
	if max != 0 {
		hsv.S = d / max
	}
	if max == min {
		return hsv
	}

	switch max {
	case rf:
		h := (gf - bf) / d
		if gf < bf {
			h += 6
		}
		hsv.H = h / 6
	case gf:
		hsv.H = ((bf-rf)/d + 2) / 6
	case bf:
		hsv.H = ((rf-gf)/d + 4) / 6
	}
	return hsv
}

// RGBFromHSV converts an HSV triple to decimal RGB channels using the
// six-sector algorithm. Each channel is scaled by 255 and rounded to the
// nearest integer.
//
// Hue is wrapped into [0, 1) first, so 1.0 and 0.0 give the same result.
func RGBFromHSV(hsv HSV) (r, g, b int) {
	h := wrapHue(hsv.H)
	s, v := hsv.S, hsv.V

	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var rf, gf, bf float64
	switch int(i) % 6 {
	case 0:
		rf, gf, bf = v, t, p
	case 1:
		rf, gf, bf = q, v, p
	case 2:
		rf, gf, bf = p, v, t
	case 3:
		rf, gf, bf = p, q, v
	case 4:
		rf, gf, bf = t, p, v
	case 5:
		rf, gf, bf = v, p, q
	}

	return int(math.Round(rf * 255)), int(math.Round(gf * 255)), int(math.Round(bf * 255))
}

// wrapHue maps any hue onto [0, 1).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	if h >= 1 {
		h = 0
	}
	return h
}

func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
