package color

import "math/rand/v2"

// Defaults for the variation generators.
const (
	DefaultMaxColors  = 5  // Colors per batch
	DefaultVariation  = 5  // Similar: absolute channel spread
	DefaultMaxPercent = 10 // Proportional: percentage spread
)

// Source supplies the random offsets used by Similar and Proportional.
type Source interface {
	// IntRange returns a uniformly distributed integer in [min, max].
	IntRange(min, max int) int
}

// globalSource draws from the process-wide math/rand/v2 generator.
type globalSource struct{}

func (globalSource) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.IntN(max-min+1)
}

// Generator produces randomized variations of a color.
//
// A Generator holds no mutable state of its own; it is as safe for concurrent
// use as its Source.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing offsets from src. A nil src uses
// the process-wide random generator.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// Similar returns maxColors colors whose channels each differ from base by an
// independent random offset in [-variation/2, variation/2] (integer halves).
//
// A non-positive maxColors uses DefaultMaxColors and a negative variation
// uses DefaultVariation. Channels pushed outside 0-255 are clamped.
func (g *Generator) Similar(base Color, maxColors, variation int) []Color {
	if maxColors <= 0 {
		maxColors = DefaultMaxColors
	}
	if variation < 0 {
		variation = DefaultVariation
	}

	spread := variation / 2
	colors := make([]Color, maxColors)
	for i := range colors {
		colors[i] = FromRGB(
			base.rgb.R+g.src.IntRange(-spread, spread),
			base.rgb.G+g.src.IntRange(-spread, spread),
			base.rgb.B+g.src.IntRange(-spread, spread),
		)
	}
	return colors
}

// Proportional returns maxColors colors where all three channels of base are
// scaled by the same random percentage in [-maxPercent/2, maxPercent/2].
//
// Each channel moves by floor(channel * percent / 100), so the relative
// shading between channels is preserved. A non-positive maxColors uses
// DefaultMaxColors and a negative maxPercent uses DefaultMaxPercent.
// Channels pushed outside 0-255 are clamped.
func (g *Generator) Proportional(base Color, maxColors, maxPercent int) []Color {
	if maxColors <= 0 {
		maxColors = DefaultMaxColors
	}
	if maxPercent < 0 {
		maxPercent = DefaultMaxPercent
	}

	spread := maxPercent / 2
	colors := make([]Color, maxColors)
	for i := range colors {
		percent := g.src.IntRange(-spread, spread)
		colors[i] = FromRGB(
			base.rgb.R+floorDiv(base.rgb.R*percent, 100),
			base.rgb.G+floorDiv(base.rgb.G*percent, 100),
			base.rgb.B+floorDiv(base.rgb.B*percent, 100),
		)
	}
	return colors
}

// Similar returns randomized near-identical colors using the default
// generator. See Generator.Similar.
func (c Color) Similar(maxColors, variation int) []Color {
	return defaultGenerator.Similar(c, maxColors, variation)
}

// Proportional returns randomized lighter and darker shades using the default
// generator. See Generator.Proportional.
func (c Color) Proportional(maxColors, maxPercent int) []Color {
	return defaultGenerator.Proportional(c, maxColors, maxPercent)
}

// floorDiv divides rounding toward negative infinity. Integer math keeps
// exact multiples such as 200*-5/100 from drifting to -11 through float error.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
