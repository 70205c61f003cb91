package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func prop(typ, description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        typ,
		"description": description,
	}
}

func propDefault(typ, description string, def interface{}) map[string]interface{} {
	p := prop(typ, description)
	p["default"] = def
	return p
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Random Colors
		{
			Name:        "color_random_channel",
			Description: "Draw a random RGB channel value, uniformly distributed over 0-255 inclusive.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "color_random_alpha",
			Description: "Draw a random opacity in 0-1, rounded to two decimal places.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "color_random",
			Description: "Draw a random RGB color with independent channels, returned with its HSL form and a random alpha.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},

		// Conversion
		{
			Name:        "color_rgb_to_hsl",
			Description: "Convert an RGB color to HSL. Hue is returned in whole degrees (0-359), saturation and luminosity in whole percent.",
			InputSchema: objectSchema(map[string]interface{}{
				"r": prop("number", "Red channel (0-255)"),
				"g": prop("number", "Green channel (0-255)"),
				"b": prop("number", "Blue channel (0-255)"),
			}, "r", "g", "b"),
		},
		{
			Name:        "color_hsl_to_rgb",
			Description: "Convert an HSL color to RGB. Channels are rounded but not clamped, so out-of-range input can yield values outside 0-255.",
			InputSchema: objectSchema(map[string]interface{}{
				"h": prop("number", "Hue in degrees (0-360)"),
				"s": prop("number", "Saturation in percent (0-100)"),
				"l": prop("number", "Luminosity in percent (0-100)"),
			}, "h", "s", "l"),
		},
		{
			Name:        "color_swatch",
			Description: "Render an HSL color as a solid base64-encoded PNG swatch.",
			InputSchema: objectSchema(map[string]interface{}{
				"h":      prop("number", "Hue in degrees (0-360)"),
				"s":      prop("number", "Saturation in percent (0-100)"),
				"l":      prop("number", "Luminosity in percent (0-100)"),
				"width":  propDefault("integer", "Swatch width in pixels. Default 64", defaultSwatchSize),
				"height": propDefault("integer", "Swatch height in pixels. Default 64", defaultSwatchSize),
			}, "h", "s", "l"),
		},

		// Image Colors
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and alpha support. The image is cached for subsequent calls.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": prop("string", "Absolute path to the image file"),
			}, "path"),
		},
		{
			Name:        "image_sample_color",
			Description: "Get the RGB and HSL color at a specific pixel coordinate.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": prop("string", "Absolute path to the image file"),
				"x":    prop("integer", "X coordinate (0-based, from left)"),
				"y":    prop("integer", "Y coordinate (0-based, from top)"),
			}, "path", "x", "y"),
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Get RGB and HSL colors at multiple pixel coordinates in a single call.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": prop("string", "Absolute path to the image file"),
				"points": map[string]interface{}{
					"type": "array",
					"items": objectSchema(map[string]interface{}{
						"x":     prop("integer", "X coordinate"),
						"y":     prop("integer", "Y coordinate"),
						"label": prop("string", "Optional label for this point"),
					}, "x", "y"),
					"description": "Points to sample",
				},
			}, "path", "points"),
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most common colors in an image or region, each with its RGB and HSL form.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":  prop("string", "Absolute path to the image file"),
				"count": propDefault("integer", "Number of colors to return. Default 5", defaultDominantCount),
				"region": objectSchema(map[string]interface{}{
					"x1": prop("integer", "Left edge (inclusive)"),
					"y1": prop("integer", "Top edge (inclusive)"),
					"x2": prop("integer", "Right edge (exclusive)"),
					"y2": prop("integer", "Bottom edge (exclusive)"),
				}, "x1", "y1", "x2", "y2"),
			}, "path"),
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
