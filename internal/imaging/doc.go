// Package imaging renders palettes of colors as images for the MCP server.
//
// A swatch is a grid of solid square tiles, one per color, laid out left to
// right and top to bottom. Swatches can be returned as base64-encoded PNG
// data (RenderSwatch) or written to disk (SaveSwatch).
//
// # Layout
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner. Tile i is
// placed at column i%columns and row i/columns. Cells after the last color in
// the final row are transparent.
//
// # Labels
//
// When labels are enabled each tile shows its "#RRGGBB" code in a 7x13 bitmap
// font. The text is black or white, chosen by the perceptual lightness of the
// tile (see ContrastColor). Labels are skipped on tiles too small to hold them.
//
// # Error Handling
//
// Functions return errors for:
//   - Empty palettes or more than MaxSwatchColors colors
//   - Tile sizes above MaxTileSize
//   - Scale factors that shrink the swatch to nothing
//   - PNG encoding or file write failures
package imaging
