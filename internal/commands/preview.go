package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	tc "github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/preview"
)

// previewOptions holds the flags of the preview command.
type previewOptions struct {
	mode     string
	count    int
	spread   int
	perRow   int
	out      string
	tileSize int
	labels   bool
}

var previewOpts = previewOptions{}

var previewCmd = &cobra.Command{
	Use:   "preview <hex>",
	Short: "Show a color and a palette derived from it in the terminal",
	Long: `Print a color's RGB, CMYK and HSV values followed by a palette derived
from it. Use --out to also save the palette as a PNG swatch.

Modes:
  proportional  shades moved together by up to half of --spread percent (default)
  similar       channels moved independently by up to half of --spread
  harmony       complement, triads and analogous colors`,
	Example: `  color-mcp preview "#FFD750"
  color-mcp preview 22CC55 --mode similar --count 12 --spread 20
  color-mcp preview F0C --mode harmony --out palette.png --labels`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd, args[0], previewOpts, tc.NewGenerator(nil))
	},
}

func runPreview(cmd *cobra.Command, input string, opts previewOptions, gen *tc.Generator) error {
	base, err := tc.Parse(input)
	if err != nil {
		return err
	}
	mode, err := tc.ParsePaletteMode(opts.mode)
	if err != nil {
		return err
	}

	colors, err := gen.BuildPalette(base, mode, opts.count, opts.spread)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, preview.Describe(base))
	fmt.Fprintln(out)
	fmt.Fprintln(out, preview.Palette(colors, opts.perRow))

	if opts.out != "" {
		err := imaging.SaveSwatch(opts.out, colors, imaging.SwatchOptions{
			TileSize: opts.tileSize,
			Columns:  opts.perRow,
			Labels:   opts.labels,
		})
		if err != nil {
			return err
		}
		if debugEnabled() {
			log.Printf("wrote %d-color swatch to %s", len(colors), opts.out)
		}
	}
	return nil
}

func init() {
	f := previewCmd.Flags()
	f.StringVarP(&previewOpts.mode, "mode", "m", string(tc.ModeProportional), "palette mode: proportional, similar or harmony")
	f.IntVarP(&previewOpts.count, "count", "n", 24, "number of colors for proportional and similar modes")
	f.IntVarP(&previewOpts.spread, "spread", "s", 30, "max percent (proportional) or variation (similar)")
	f.IntVar(&previewOpts.perRow, "per-row", preview.DefaultPerRow, "colors per row")
	f.StringVarP(&previewOpts.out, "out", "o", "", "also write the palette as a PNG swatch to this path")
	f.IntVar(&previewOpts.tileSize, "tile-size", imaging.DefaultTileSize, "swatch tile size in pixels (with --out)")
	f.BoolVar(&previewOpts.labels, "labels", false, "draw hex codes on swatch tiles (with --out)")
}
