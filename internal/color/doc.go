// Package color implements the color engine behind the MCP server.
//
// A Color is an immutable value built from a hex string such as "#FFD750",
// "ffd750", "  #FD5 " or from decimal RGB channels. Every Color carries its
// canonical hex form together with RGB, CMYK and HSV representations, all
// derived once when the value is constructed.
//
// # Representations
//
//   - Hex: "#RRGGBB", always uppercase and six digits
//   - RGB: 0-255 per channel, plus the two-digit hex pair of each channel
//   - CMYK: 0.0-1.0 per component, rounded to one decimal place
//   - HSV: 0.0-1.0 per component; hue is a fraction of a full turn, not degrees
//
// # Derived Colors
//
// Harmony operations (Complement, Triads, Analogous) rotate the hue in HSV
// space and are deterministic. Variation operations (Similar, Proportional)
// draw bounded random offsets from a Source. The package-level default uses
// the process-wide math/rand/v2 generator; use NewGenerator with a custom
// Source to make the offsets reproducible.
//
// # Errors
//
// Failures wrap one of three sentinels and can be tested with errors.Is:
//   - ErrInvalidFormat: malformed hex input (wrong length, non-hex digits)
//   - ErrInvalidArgument: an option outside its allowed range
//   - ErrInvalidInput: out-of-range channel values passed to a converter
//
// # Thread Safety
//
// Color values are never mutated and may be shared freely between goroutines.
// The default Source is safe for concurrent use.
package color
