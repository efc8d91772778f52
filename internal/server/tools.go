package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorProperty is the schema shared by every tool's "color" argument.
var colorProperty = map[string]interface{}{
	"type":        "string",
	"description": "Hex color, e.g. \"#FFD750\", \"ffd750\" or \"#FD5\". The leading # and surrounding whitespace are optional.",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversion
		{
			Name:        "color_analyze",
			Description: "Parse a hex color and return the input alongside its canonical hex, RGB, CMYK and HSV values.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_convert",
			Description: "Convert a hex color to canonical #RRGGBB, RGB (0-255), CMYK (0-1, one decimal) and HSV (0-1, hue as a fraction of a turn).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
				},
				"required": []string{"color"},
			},
		},

		// Harmony
		{
			Name:        "color_complement",
			Description: "Return the complementary color (hue rotated by half a turn).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_triads",
			Description: "Return the two colors that form an equilateral triad with the given color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_analogous",
			Description: "Return the two analogous colors whose hue is a small step below and above the given color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"variation": map[string]interface{}{
						"type":        "number",
						"description": "Hue offset as a fraction of a full turn, 0 to 1 (default 0.02)",
						"default":     0.02,
					},
				},
				"required": []string{"color"},
			},
		},

		// Variation
		{
			Name:        "color_similar",
			Description: "Generate random colors close to the given color. Each RGB channel is offset independently by up to half the variation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"max_colors": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to generate (default 5)",
						"default":     5,
					},
					"variation": map[string]interface{}{
						"type":        "integer",
						"description": "Total spread per channel in 0-255 units (default 5)",
						"default":     5,
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_proportional",
			Description: "Generate random lighter and darker shades of the given color. All channels move by the same percentage, preserving the hue.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"max_colors": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to generate (default 5)",
						"default":     5,
					},
					"max_percent": map[string]interface{}{
						"type":        "integer",
						"description": "Total percentage spread; each color moves by up to half of it (default 10)",
						"default":     10,
					},
				},
				"required": []string{"color"},
			},
		},

		// Rendering
		{
			Name:        "color_palette_image",
			Description: "Render a palette derived from the given color as a PNG swatch grid, returned base64-encoded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"proportional", "similar", "harmony"},
						"description": "How to derive the palette (default proportional)",
						"default":     "proportional",
					},
					"max_colors": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors for similar/proportional modes (default 24)",
						"default":     24,
					},
					"spread": map[string]interface{}{
						"type":        "integer",
						"description": "Variation (similar) or max percent (proportional). Default 30",
						"default":     30,
					},
					"tile_size": map[string]interface{}{
						"type":        "integer",
						"description": "Tile edge length in pixels (default 64)",
						"default":     64,
					},
					"columns": map[string]interface{}{
						"type":        "integer",
						"description": "Tiles per row (default 6)",
						"default":     6,
					},
					"labels": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw each tile's hex code on it",
						"default":     false,
					},
				},
				"required": []string{"color"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
