// Package server implements the MCP (Model Context Protocol) server for the color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the color engine
// through the MCP protocol, letting MCP-compatible clients convert colors and
// derive palettes from them.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Conversion:
//   - color_analyze: Echo the input with hex, RGB, CMYK and HSV
//   - color_convert: Hex, RGB, CMYK and HSV for a color
//
// Harmony:
//   - color_complement: Opposite hue
//   - color_triads: Hues one and two thirds of a turn away
//   - color_analogous: Neighboring hues
//
// Variation:
//   - color_similar: Random per-channel offsets
//   - color_proportional: Random shared percentage offsets
//
// Rendering:
//   - color_palette_image: PNG swatch grid of a derived palette
//
// # Options
//
// Numeric options are read leniently. A value that is missing or not a JSON
// number falls back to the tool's default instead of failing the call.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. "invalid hex color format: ..."
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
