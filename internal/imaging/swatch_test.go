package imaging

import (
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tc "github.com/ironsheep/color-tools-mcp/internal/color"
)

func testColors(hexes ...string) []tc.Color {
	colors := make([]tc.Color, len(hexes))
	for i, h := range hexes {
		colors[i] = tc.MustParse(h)
	}
	return colors
}

func decodeSwatch(t *testing.T, result *SwatchResult) image.Image {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("Failed to decode base64: %v", err)
	}
	img, err := png.Decode(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	return img
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestRenderSwatch(t *testing.T) {
	colors := testColors("#FF0000", "#00FF00", "#0000FF")

	result, err := RenderSwatch(colors, SwatchOptions{TileSize: 10})
	if err != nil {
		t.Fatalf("RenderSwatch failed: %v", err)
	}

	if result.Width != 30 || result.Height != 10 {
		t.Errorf("Size: got %dx%d, want 30x10", result.Width, result.Height)
	}
	if result.Columns != 3 || result.Rows != 1 {
		t.Errorf("Grid: got %dx%d, want 3x1", result.Columns, result.Rows)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if len(result.Colors) != 3 || result.Colors[2] != "#0000FF" {
		t.Errorf("Colors: got %v", result.Colors)
	}

	img := decodeSwatch(t, result)
	want := []color.NRGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
	}
	for i, w := range want {
		if got := nrgbaAt(img, i*10+5, 5); got != w {
			t.Errorf("tile %d: got %v, want %v", i, got, w)
		}
	}
}

func TestBuildSwatch_Wraps(t *testing.T) {
	colors := testColors("#111", "#222", "#333", "#444", "#555")

	img, err := BuildSwatch(colors, SwatchOptions{TileSize: 8, Columns: 2})
	if err != nil {
		t.Fatalf("BuildSwatch failed: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 24 {
		t.Fatalf("Size: got %dx%d, want 16x24", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Fifth color lands on row 3, column 1.
	if got := nrgbaAt(img, 4, 20); got != (color.NRGBA{0x55, 0x55, 0x55, 255}) {
		t.Errorf("fifth tile: got %v", got)
	}
	// The cell after it stays transparent.
	if got := nrgbaAt(img, 12, 20); got.A != 0 {
		t.Errorf("empty cell should be transparent, got %v", got)
	}
}

func TestBuildSwatch_Defaults(t *testing.T) {
	colors := testColors("#FFD750", "#FFD750", "#FFD750", "#FFD750", "#FFD750", "#FFD750", "#FFD750")

	img, err := BuildSwatch(colors, SwatchOptions{})
	if err != nil {
		t.Fatalf("BuildSwatch failed: %v", err)
	}
	if img.Bounds().Dx() != DefaultColumns*DefaultTileSize || img.Bounds().Dy() != 2*DefaultTileSize {
		t.Errorf("Size: got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestBuildSwatch_Scale(t *testing.T) {
	img, err := BuildSwatch(testColors("#FF0000", "#0000FF"), SwatchOptions{TileSize: 10, Scale: 2})
	if err != nil {
		t.Fatalf("BuildSwatch failed: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 20 {
		t.Errorf("Size: got %dx%d, want 40x20", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if got := nrgbaAt(img, 30, 10); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("scaled tile: got %v", got)
	}
}

func TestBuildSwatch_Errors(t *testing.T) {
	tests := []struct {
		name   string
		colors []tc.Color
		opts   SwatchOptions
	}{
		{"no colors", nil, SwatchOptions{}},
		{"too many colors", make([]tc.Color, MaxSwatchColors+1), SwatchOptions{}},
		{"tile too large", testColors("#FFF"), SwatchOptions{TileSize: MaxTileSize + 1}},
		{"scale to nothing", testColors("#FFF"), SwatchOptions{TileSize: 4, Scale: 0.01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildSwatch(tt.colors, tt.opts); err == nil {
				t.Error("BuildSwatch should fail")
			}
		})
	}
}

func TestBuildSwatch_Labels(t *testing.T) {
	colors := testColors("#000000")

	plain, err := BuildSwatch(colors, SwatchOptions{TileSize: 80})
	if err != nil {
		t.Fatalf("BuildSwatch failed: %v", err)
	}
	labeled, err := BuildSwatch(colors, SwatchOptions{TileSize: 80, Labels: true})
	if err != nil {
		t.Fatalf("BuildSwatch failed: %v", err)
	}

	white := 0
	for y := 0; y < 80; y++ {
		for x := 0; x < 80; x++ {
			if nrgbaAt(plain, x, y) != (color.NRGBA{0, 0, 0, 255}) {
				t.Fatalf("unlabeled tile should be solid black at (%d,%d)", x, y)
			}
			if c := nrgbaAt(labeled, x, y); c.R > 128 {
				white++
			}
		}
	}
	if white == 0 {
		t.Error("labeled black tile should contain light text pixels")
	}
	// Corners stay untouched by the centered label.
	if got := nrgbaAt(labeled, 0, 0); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("corner: got %v", got)
	}
}

func TestBuildSwatch_LabelSkippedOnSmallTiles(t *testing.T) {
	img, err := BuildSwatch(testColors("#000000"), SwatchOptions{TileSize: 20, Labels: true})
	if err != nil {
		t.Fatalf("BuildSwatch failed: %v", err)
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if nrgbaAt(img, x, y) != (color.NRGBA{0, 0, 0, 255}) {
				t.Fatalf("label should be skipped on a 20px tile, found ink at (%d,%d)", x, y)
			}
		}
	}
}

func TestSaveSwatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.png")

	if err := SaveSwatch(path, testColors("#22CC55", "#FFD750"), SwatchOptions{TileSize: 16}); err != nil {
		t.Fatalf("SaveSwatch failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open saved swatch: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Saved file is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
		t.Errorf("Size: got %dx%d, want 32x16", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if got := nrgbaAt(img, 8, 8); got != (color.NRGBA{0x22, 0xCC, 0x55, 255}) {
		t.Errorf("first tile: got %v", got)
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#FFFFFF", "#000000"},
		{"#FFD750", "#000000"},
		{"#000000", "#FFFFFF"},
		{"#0000FF", "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			c := tc.MustParse(tt.hex)
			if got := ContrastHex(c); got != tt.want {
				t.Errorf("ContrastHex: got %s, want %s", got, tt.want)
			}
			wantColor := color.Color(color.White)
			if tt.want == "#000000" {
				wantColor = color.Black
			}
			if ContrastColor(c) != wantColor {
				t.Errorf("ContrastColor disagrees with ContrastHex for %s", tt.hex)
			}
		})
	}
}
