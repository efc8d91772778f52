package color

import "fmt"

// DefaultAnalogousVariation is the hue offset used for analogous colors when
// the caller has no preference (1/50 of a turn, about 7 degrees).
const DefaultAnalogousVariation = 1.0 / 50

// Complement returns the color opposite this one on the hue wheel.
//
// The hue is rotated by half a turn; saturation and value are unchanged, so
// applying Complement twice returns the original color.
func (c Color) Complement() Color {
	return c.rotate(0.5)
}

// Triads returns the two colors at one third and two thirds of a turn from
// this one. Together with the receiver they form an equilateral triad.
func (c Color) Triads() [2]Color {
	return [2]Color{c.rotate(1.0 / 3), c.rotate(2.0 / 3)}
}

// Analogous returns the two colors whose hue sits variation turns below and
// above this one, in that order.
//
// Returns an error wrapping ErrInvalidArgument if variation is outside
// [0, 1]. Pass DefaultAnalogousVariation for the conventional spread.
func (c Color) Analogous(variation float64) ([2]Color, error) {
	if !(variation >= 0 && variation <= 1) {
		return [2]Color{}, fmt.Errorf("%w: analogous variation %v must be between 0 and 1",
			ErrInvalidArgument, variation)
	}
	return [2]Color{c.rotate(-variation), c.rotate(variation)}, nil
}

// rotate shifts the hue by turn (a fraction of a full turn) and rebuilds the
// color through HSV -> RGB.
func (c Color) rotate(turn float64) Color {
	hsv := c.hsv
	hsv.H = wrapHue(hsv.H + turn)
	return FromHSV(hsv)
}
