package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	tc "github.com/ironsheep/color-tools-mcp/internal/color"
)

// Swatch layout defaults.
const (
	DefaultTileSize = 64
	DefaultColumns  = 6
	MaxTileSize     = 512
	MaxSwatchColors = 256
)

// SwatchOptions controls the layout of a palette swatch.
type SwatchOptions struct {
	TileSize int     // Edge length of each square tile in pixels (default 64)
	Columns  int     // Tiles per row (default 6, capped at the color count)
	Labels   bool    // Draw each tile's hex code on it
	Scale    float64 // Optional resize factor applied to the finished swatch
}

// SwatchResult contains an encoded palette swatch.
type SwatchResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Columns     int      `json:"columns"`
	Rows        int      `json:"rows"`
	Colors      []string `json:"colors"` // Hex of each tile, row-major
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
}

// BuildSwatch lays colors out as a grid of solid square tiles.
//
// Tiles are placed left to right, top to bottom. Cells past the last color in
// the final row are left transparent.
//
// Returns an error if colors is empty, has more than MaxSwatchColors entries,
// or the tile size exceeds MaxTileSize.
func BuildSwatch(colors []tc.Color, opts SwatchOptions) (*image.NRGBA, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("swatch needs at least one color")
	}
	if len(colors) > MaxSwatchColors {
		return nil, fmt.Errorf("swatch supports at most %d colors, got %d", MaxSwatchColors, len(colors))
	}
	opts = opts.withDefaults(len(colors))
	if opts.TileSize > MaxTileSize {
		return nil, fmt.Errorf("tile size %d exceeds maximum %d", opts.TileSize, MaxTileSize)
	}

	rows := (len(colors) + opts.Columns - 1) / opts.Columns
	canvas := imaging.New(opts.Columns*opts.TileSize, rows*opts.TileSize, image.Transparent)

	for i, c := range colors {
		tile := imaging.New(opts.TileSize, opts.TileSize, c)
		if opts.Labels {
			drawLabel(tile, c.Hex(), ContrastColor(c))
		}
		pos := image.Pt((i%opts.Columns)*opts.TileSize, (i/opts.Columns)*opts.TileSize)
		canvas = imaging.Paste(canvas, tile, pos)
	}

	if opts.Scale > 0 && opts.Scale != 1.0 {
		w := int(float64(canvas.Bounds().Dx()) * opts.Scale)
		h := int(float64(canvas.Bounds().Dy()) * opts.Scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %v leaves an empty image", opts.Scale)
		}
		// Nearest neighbor keeps tile colors exact.
		canvas = imaging.Resize(canvas, w, h, imaging.NearestNeighbor)
	}

	return canvas, nil
}

// RenderSwatch builds a swatch and returns it as a base64-encoded PNG.
func RenderSwatch(colors []tc.Color, opts SwatchOptions) (*SwatchResult, error) {
	img, err := BuildSwatch(colors, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	opts = opts.withDefaults(len(colors))
	hexes := make([]string, len(colors))
	for i, c := range colors {
		hexes[i] = c.Hex()
	}

	return &SwatchResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		Columns:     opts.Columns,
		Rows:        (len(colors) + opts.Columns - 1) / opts.Columns,
		Colors:      hexes,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SaveSwatch builds a swatch and writes it to path as a PNG file.
func SaveSwatch(path string, colors []tc.Color, opts SwatchOptions) error {
	img, err := BuildSwatch(colors, opts)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save swatch: %w", err)
	}
	return nil
}

func (o SwatchOptions) withDefaults(count int) SwatchOptions {
	if o.TileSize <= 0 {
		o.TileSize = DefaultTileSize
	}
	if o.Columns <= 0 {
		o.Columns = DefaultColumns
	}
	if o.Columns > count {
		o.Columns = count
	}
	return o
}
