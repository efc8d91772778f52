package server

import (
	"encoding/json"
	"fmt"
	"log"

	tc "github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

// Palette image defaults, matching the original demo page.
const (
	defaultPaletteColors = 24
	defaultPaletteSpread = 30
)

// maxBatchColors bounds max_colors for the variation tools.
const maxBatchColors = 1000

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_analyze", "color_similar").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// ColorResult contains one color in every supported representation.
type ColorResult struct {
	Hex  string  `json:"hex"`  // Canonical "#RRGGBB"
	RGB  tc.RGB  `json:"rgb"`  // Decimal channels and hex pairs
	CMYK tc.CMYK `json:"cmyk"` // 0-1, one decimal
	HSV  tc.HSV  `json:"hsv"`  // 0-1, hue as a fraction of a turn
}

func newColorResult(c tc.Color) ColorResult {
	return ColorResult{Hex: c.Hex(), RGB: c.RGB(), CMYK: c.CMYK(), HSV: c.HSV()}
}

func newColorResults(colors []tc.Color) []ColorResult {
	results := make([]ColorResult, len(colors))
	for i, c := range colors {
		results[i] = newColorResult(c)
	}
	return results
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.debug {
		log.Printf("tool %s %s", params.Name, string(params.Arguments))
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Parses the base color
//  3. Applies default values for optional parameters
//  4. Calls the color engine
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Conversion
	case "color_analyze":
		return s.handleColorAnalyze(args)
	case "color_convert":
		return s.handleColorConvert(args)

	// Harmony
	case "color_complement":
		return s.handleColorComplement(args)
	case "color_triads":
		return s.handleColorTriads(args)
	case "color_analogous":
		return s.handleColorAnalogous(args)

	// Variation
	case "color_similar":
		return s.handleColorSimilar(args)
	case "color_proportional":
		return s.handleColorProportional(args)

	// Rendering
	case "color_palette_image":
		return s.handleColorPaletteImage(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// intOption returns v as an int when it is a JSON number and def otherwise.
// Fractions are truncated. Option values of the wrong type are not errors.
func intOption(v interface{}, def int) int {
	n, ok := v.(float64)
	if !ok {
		return def
	}
	return int(n)
}

// floatOption returns v when it is a JSON number and def otherwise.
func floatOption(v interface{}, def float64) float64 {
	n, ok := v.(float64)
	if !ok {
		return def
	}
	return n
}

// boolOption returns v when it is a JSON boolean and def otherwise.
func boolOption(v interface{}, def bool) bool {
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

// === Conversion Handlers ===

type colorArgs struct {
	Color string `json:"color"`
}

func decodeColor(args json.RawMessage) (tc.Color, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return tc.Color{}, err
	}
	return tc.Parse(a.Color)
}

func (s *Server) handleColorAnalyze(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return tc.Analyze(a.Color)
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	c, err := decodeColor(args)
	if err != nil {
		return nil, err
	}
	return newColorResult(c), nil
}

// === Harmony Handlers ===

// ComplementResult contains a color and its complement.
type ComplementResult struct {
	Base       ColorResult `json:"base"`
	Complement ColorResult `json:"complement"`
}

func (s *Server) handleColorComplement(args json.RawMessage) (interface{}, error) {
	c, err := decodeColor(args)
	if err != nil {
		return nil, err
	}
	return &ComplementResult{
		Base:       newColorResult(c),
		Complement: newColorResult(c.Complement()),
	}, nil
}

// TriadsResult contains a color and the two colors completing its triad.
type TriadsResult struct {
	Base   ColorResult   `json:"base"`
	Triads []ColorResult `json:"triads"`
}

func (s *Server) handleColorTriads(args json.RawMessage) (interface{}, error) {
	c, err := decodeColor(args)
	if err != nil {
		return nil, err
	}
	triads := c.Triads()
	return &TriadsResult{
		Base:   newColorResult(c),
		Triads: newColorResults(triads[:]),
	}, nil
}

type colorAnalogousArgs struct {
	Color     string      `json:"color"`
	Variation interface{} `json:"variation"`
}

// AnalogousResult contains a color and its two analogous neighbors.
type AnalogousResult struct {
	Base      ColorResult   `json:"base"`
	Variation float64       `json:"variation"`
	Analogous []ColorResult `json:"analogous"`
}

func (s *Server) handleColorAnalogous(args json.RawMessage) (interface{}, error) {
	var a colorAnalogousArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := tc.Parse(a.Color)
	if err != nil {
		return nil, err
	}

	variation := floatOption(a.Variation, tc.DefaultAnalogousVariation)
	analogous, err := c.Analogous(variation)
	if err != nil {
		return nil, err
	}
	return &AnalogousResult{
		Base:      newColorResult(c),
		Variation: variation,
		Analogous: newColorResults(analogous[:]),
	}, nil
}

// === Variation Handlers ===

// VariationResult contains a base color and a generated batch.
type VariationResult struct {
	Base       ColorResult   `json:"base"`
	Variation  int           `json:"variation,omitempty"`
	MaxPercent int           `json:"max_percent,omitempty"`
	Colors     []ColorResult `json:"colors"`
}

type colorSimilarArgs struct {
	Color     string      `json:"color"`
	MaxColors interface{} `json:"max_colors"`
	Variation interface{} `json:"variation"`
}

func (s *Server) handleColorSimilar(args json.RawMessage) (interface{}, error) {
	var a colorSimilarArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := tc.Parse(a.Color)
	if err != nil {
		return nil, err
	}

	maxColors, err := batchSize(a.MaxColors, tc.DefaultMaxColors)
	if err != nil {
		return nil, err
	}
	variation := intOption(a.Variation, tc.DefaultVariation)
	if variation < 0 {
		variation = tc.DefaultVariation
	}

	return &VariationResult{
		Base:      newColorResult(c),
		Variation: variation,
		Colors:    newColorResults(s.gen.Similar(c, maxColors, variation)),
	}, nil
}

type colorProportionalArgs struct {
	Color      string      `json:"color"`
	MaxColors  interface{} `json:"max_colors"`
	MaxPercent interface{} `json:"max_percent"`
}

func (s *Server) handleColorProportional(args json.RawMessage) (interface{}, error) {
	var a colorProportionalArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := tc.Parse(a.Color)
	if err != nil {
		return nil, err
	}

	maxColors, err := batchSize(a.MaxColors, tc.DefaultMaxColors)
	if err != nil {
		return nil, err
	}
	maxPercent := intOption(a.MaxPercent, tc.DefaultMaxPercent)
	if maxPercent < 0 {
		maxPercent = tc.DefaultMaxPercent
	}

	return &VariationResult{
		Base:       newColorResult(c),
		MaxPercent: maxPercent,
		Colors:     newColorResults(s.gen.Proportional(c, maxColors, maxPercent)),
	}, nil
}

// batchSize reads a max_colors option. Missing, non-numeric and
// non-positive values use def.
func batchSize(v interface{}, def int) (int, error) {
	n := intOption(v, def)
	if n <= 0 {
		n = def
	}
	if n > maxBatchColors {
		return 0, fmt.Errorf("%w: max_colors %d exceeds limit of %d", tc.ErrInvalidArgument, n, maxBatchColors)
	}
	return n, nil
}

// === Rendering Handlers ===

type colorPaletteImageArgs struct {
	Color     string      `json:"color"`
	Mode      string      `json:"mode"`
	MaxColors interface{} `json:"max_colors"`
	Spread    interface{} `json:"spread"`
	TileSize  interface{} `json:"tile_size"`
	Columns   interface{} `json:"columns"`
	Labels    interface{} `json:"labels"`
}

// PaletteImageResult contains a rendered palette and the mode that produced it.
type PaletteImageResult struct {
	Base string `json:"base"`
	Mode string `json:"mode"`
	*imaging.SwatchResult
}

func (s *Server) handleColorPaletteImage(args json.RawMessage) (interface{}, error) {
	var a colorPaletteImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := tc.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	mode, err := tc.ParsePaletteMode(a.Mode)
	if err != nil {
		return nil, err
	}

	count := intOption(a.MaxColors, defaultPaletteColors)
	if count <= 0 {
		count = defaultPaletteColors
	}
	if count > imaging.MaxSwatchColors {
		return nil, fmt.Errorf("%w: max_colors %d exceeds limit of %d", tc.ErrInvalidArgument, count, imaging.MaxSwatchColors)
	}
	spread := intOption(a.Spread, defaultPaletteSpread)
	if spread < 0 {
		spread = defaultPaletteSpread
	}

	colors, err := s.gen.BuildPalette(c, mode, count, spread)
	if err != nil {
		return nil, err
	}

	swatch, err := imaging.RenderSwatch(colors, imaging.SwatchOptions{
		TileSize: intOption(a.TileSize, imaging.DefaultTileSize),
		Columns:  intOption(a.Columns, imaging.DefaultColumns),
		Labels:   boolOption(a.Labels, false),
	})
	if err != nil {
		return nil, err
	}

	return &PaletteImageResult{
		Base:         c.Hex(),
		Mode:         string(mode),
		SwatchResult: swatch,
	}, nil
}
