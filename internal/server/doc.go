// Package server implements the MCP (Model Context Protocol) server for color tools.
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
// Random Colors:
//   - color_random_channel: Uniform channel value in 0-255
//   - color_random_alpha: Opacity in 0-1 with two decimals
//   - color_random: Random RGB color with its HSL form and an alpha
//
// Conversion:
//   - color_rgb_to_hsl: RGB to HSL
//   - color_hsl_to_rgb: HSL to RGB (unclamped)
//   - color_swatch: Render an HSL color as a PNG swatch
//
// Image Colors:
//   - image_load: Load image and get metadata
//   - image_sample_color: RGB and HSL at a pixel
//   - image_sample_colors_multi: Sample multiple points
//   - image_dominant_colors: Extract a color palette
//
// # Randomness
//
// Each Server owns one colorconv.Generator. Pass WithGenerator and a seeded
// generator for reproducible sessions.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
