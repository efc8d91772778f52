package color

import (
	"fmt"
	stdcolor "image/color"
	"strconv"
)

// RGB holds the decimal channels of a color along with the two-digit
// uppercase hex pair for each channel.
type RGB struct {
	R    int    `json:"r"`     // Red (0-255)
	G    int    `json:"g"`     // Green (0-255)
	B    int    `json:"b"`     // Blue (0-255)
	RHex string `json:"r_hex"` // Red as two hex digits, e.g. "05"
	GHex string `json:"g_hex"` // Green as two hex digits
	BHex string `json:"b_hex"` // Blue as two hex digits
}

// CMYK holds cyan, magenta, yellow and key components, each 0.0-1.0 and
// rounded to one decimal place.
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// HSV holds hue, saturation and value, each 0.0-1.0.
//
// Hue is a fraction of a full turn: 0 is red, 1/3 green, 2/3 blue.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// Color is an immutable color value.
//
// All representations are computed from the canonical hex form when the
// Color is constructed and never change afterwards. Two Colors with the same
// hex compare equal with ==.
//
// The zero Color is black with an empty hex string; use Parse, FromRGB or
// FromHSV to build usable values.
type Color struct {
	hex  string
	rgb  RGB
	cmyk CMYK
	hsv  HSV
}

var _ stdcolor.Color = Color{}

// Parse builds a Color from a hex string.
//
// Accepted forms include "#FFD750", "ffd750", "#FD5" and "  FD5  ". The
// digits are case-insensitive. Input that is not exactly 3 or 6 hex digits
// after removing "#" and surrounding whitespace fails with ErrInvalidFormat.
func Parse(input string) (Color, error) {
	six, err := ExpandToSix(input)
	if err != nil {
		return Color{}, err
	}
	if !isHexDigits(six) {
		return Color{}, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidFormat, input)
	}

	hex := Canonicalize(six)
	r, err := parseChannel(hex[1:3])
	if err != nil {
		return Color{}, err
	}
	g, err := parseChannel(hex[3:5])
	if err != nil {
		return Color{}, err
	}
	b, err := parseChannel(hex[5:7])
	if err != nil {
		return Color{}, err
	}

	return build(r, g, b), nil
}

// MustParse is like Parse but panics on error. It is intended for constant
// inputs in tests and package initialization.
func MustParse(input string) Color {
	c, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRGB builds a Color from decimal channels, clamping each to 0-255.
//
// Values above 255 become 255 and values below 0 become 0; generators rely
// on this saturation when offsets push a channel out of range.
func FromRGB(r, g, b int) Color {
	return build(clampChannel(r), clampChannel(g), clampChannel(b))
}

// FromHSV builds a Color from an HSV triple by way of RGB.
func FromHSV(hsv HSV) Color {
	r, g, b := RGBFromHSV(hsv)
	return FromRGB(r, g, b)
}

// build assembles a Color from channels already known to be in range.
func build(r, g, b int) Color {
	rgb := RGB{
		R:    r,
		G:    g,
		B:    b,
		RHex: fmt.Sprintf("%02X", r),
		GHex: fmt.Sprintf("%02X", g),
		BHex: fmt.Sprintf("%02X", b),
	}
	return Color{
		hex:  "#" + rgb.RHex + rgb.GHex + rgb.BHex,
		rgb:  rgb,
		cmyk: cmykFromRGB(r, g, b),
		hsv:  HSVFromRGB(r, g, b),
	}
}

func parseChannel(pair string) (int, error) {
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: channel %q: %v", ErrInvalidFormat, pair, err)
	}
	return int(v), nil
}

func clampChannel(v int) int {
	if v > 255 {
		return 255
	} else if v < 0 {
		return 0
	}
	return v
}

// Hex returns the canonical "#RRGGBB" form.
func (c Color) Hex() string { return c.hex }

// String implements fmt.Stringer and returns the canonical hex form.
func (c Color) String() string { return c.hex }

// RGB returns the decimal and hex channel breakdown.
func (c Color) RGB() RGB { return c.rgb }

// CMYK returns the CMYK components.
func (c Color) CMYK() CMYK { return c.cmyk }

// HSV returns the HSV components.
func (c Color) HSV() HSV { return c.hsv }

// RGBA implements image/color.Color. The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.rgb.R)
	r |= r << 8
	g = uint32(c.rgb.G)
	g |= g << 8
	b = uint32(c.rgb.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Analysis describes a parsed color next to the input it came from.
type Analysis struct {
	Input string `json:"input"` // Input exactly as provided
	Hex   string `json:"hex"`   // Canonical "#RRGGBB"
	RGB   RGB    `json:"rgb"`
	CMYK  CMYK   `json:"cmyk"`
	HSV   HSV    `json:"hsv"`
}

// Analyze parses input and returns its full breakdown.
//
// Returns an error wrapping ErrInvalidFormat when input cannot be parsed.
func Analyze(input string) (*Analysis, error) {
	c, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return &Analysis{
		Input: input,
		Hex:   c.Hex(),
		RGB:   c.RGB(),
		CMYK:  c.CMYK(),
		HSV:   c.HSV(),
	}, nil
}
