// Package preview renders colors as styled blocks for a terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	tc "github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

// DefaultPerRow is the number of swatch blocks per line.
const DefaultPerRow = 6

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B1B8C7"))
)

// Block renders a single color as its hex code on a background of that
// color, with black or white text depending on the background.
func Block(c tc.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(imaging.ContrastHex(c))).
		Padding(0, 1).
		Render(c.Hex())
}

// Palette renders colors as rows of blocks, perRow to a line.
// A non-positive perRow uses DefaultPerRow.
func Palette(colors []tc.Color, perRow int) string {
	if perRow <= 0 {
		perRow = DefaultPerRow
	}

	var rows []string
	for start := 0; start < len(colors); start += perRow {
		end := start + perRow
		if end > len(colors) {
			end = len(colors)
		}
		blocks := make([]string, 0, end-start)
		for _, c := range colors[start:end] {
			blocks = append(blocks, Block(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Describe renders a color's block followed by its RGB, CMYK and HSV values.
func Describe(c tc.Color) string {
	rgb, cmyk, hsv := c.RGB(), c.CMYK(), c.HSV()

	lines := []string{
		headingStyle.Render(c.Hex()) + " " + Block(c),
		detailStyle.Render(fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)),
		detailStyle.Render(fmt.Sprintf("cmyk(%.1f, %.1f, %.1f, %.1f)", cmyk.C, cmyk.M, cmyk.Y, cmyk.K)),
		detailStyle.Render(fmt.Sprintf("hsv(%.3f, %.3f, %.3f)", hsv.H, hsv.S, hsv.V)),
	}
	return strings.Join(lines, "\n")
}
