package color

import (
	"fmt"
	"strings"
)

// PaletteMode selects how BuildPalette derives colors from a base color.
type PaletteMode string

const (
	// ModeSimilar varies each channel independently (see Generator.Similar).
	ModeSimilar PaletteMode = "similar"
	// ModeProportional scales all channels together (see Generator.Proportional).
	ModeProportional PaletteMode = "proportional"
	// ModeHarmony lists the base color, its complement, triads and analogous
	// colors. It uses no randomness.
	ModeHarmony PaletteMode = "harmony"
)

// ParsePaletteMode maps a mode name (case-insensitive) to a PaletteMode.
// An empty name selects ModeProportional.
func ParsePaletteMode(name string) (PaletteMode, error) {
	switch PaletteMode(strings.ToLower(strings.TrimSpace(name))) {
	case "", ModeProportional:
		return ModeProportional, nil
	case ModeSimilar:
		return ModeSimilar, nil
	case ModeHarmony:
		return ModeHarmony, nil
	default:
		return "", fmt.Errorf("%w: unknown palette mode %q (want similar, proportional or harmony)",
			ErrInvalidArgument, name)
	}
}

// BuildPalette derives a list of colors from base.
//
// For ModeSimilar and ModeProportional, count and spread are passed through
// as maxColors and variation/maxPercent. For ModeHarmony they are ignored and
// the result is always six colors: base, complement, both triads and both
// analogous colors at DefaultAnalogousVariation.
func (g *Generator) BuildPalette(base Color, mode PaletteMode, count, spread int) ([]Color, error) {
	switch mode {
	case ModeSimilar:
		return g.Similar(base, count, spread), nil
	case ModeProportional:
		return g.Proportional(base, count, spread), nil
	case ModeHarmony:
		triads := base.Triads()
		analogous, err := base.Analogous(DefaultAnalogousVariation)
		if err != nil {
			return nil, err
		}
		return []Color{base, base.Complement(), triads[0], triads[1], analogous[0], analogous[1]}, nil
	default:
		return nil, fmt.Errorf("%w: unknown palette mode %q", ErrInvalidArgument, mode)
	}
}
