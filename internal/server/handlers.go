package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/halex22/uber-color/colorconv"
	"github.com/halex22/uber-color/internal/imaging"
)

// Defaults applied when optional tool arguments are omitted.
const (
	defaultSwatchSize    = 64
	defaultDominantCount = 5
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_rgb_to_hsl").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
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
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	if s.debug {
		log.Printf("tools/call %s %s", params.Name, params.Arguments)
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	text, err := marshalResult(result)
	if err != nil {
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Random Colors
	case "color_random_channel":
		return s.handleColorRandomChannel()
	case "color_random_alpha":
		return s.handleColorRandomAlpha()
	case "color_random":
		return s.handleColorRandom()

	// Conversion
	case "color_rgb_to_hsl":
		return s.handleColorRGBToHSL(args)
	case "color_hsl_to_rgb":
		return s.handleColorHSLToRGB(args)
	case "color_swatch":
		return s.handleColorSwatch(args)

	// Image Colors
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
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

// marshalResult converts a tool result to a pretty-printed JSON string.
func marshalResult(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(b), nil
}

// unmarshalArgs decodes tool arguments, treating absent arguments as an
// empty object.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// requireNumbers checks that every named argument was supplied.
func requireNumbers(names []string, values ...*float64) error {
	for i, v := range values {
		if v == nil {
			return fmt.Errorf("missing required argument: %s", names[i])
		}
	}
	return nil
}

// requireInts checks that every named integer argument was supplied.
func requireInts(names []string, values ...*int) error {
	for i, v := range values {
		if v == nil {
			return fmt.Errorf("missing required argument: %s", names[i])
		}
	}
	return nil
}

func requirePath(path string) error {
	if path == "" {
		return fmt.Errorf("missing required argument: path")
	}
	return nil
}

// === Random Color Handlers ===

type randomChannelResult struct {
	Value int `json:"value"`
}

func (s *Server) handleColorRandomChannel() (interface{}, error) {
	return randomChannelResult{Value: s.gen.Channel()}, nil
}

type randomAlphaResult struct {
	Alpha float64 `json:"alpha"`
}

func (s *Server) handleColorRandomAlpha() (interface{}, error) {
	return randomAlphaResult{Alpha: s.gen.Alpha()}, nil
}

type randomColorResult struct {
	RGB   colorconv.RGB `json:"rgb"`
	HSL   colorconv.HSL `json:"hsl"`
	Alpha float64       `json:"alpha"`
}

func (s *Server) handleColorRandom() (interface{}, error) {
	rgb := s.gen.RGB()
	return randomColorResult{
		RGB:   rgb,
		HSL:   rgb.HSL(),
		Alpha: s.gen.Alpha(),
	}, nil
}

// === Conversion Handlers ===

type rgbArgs struct {
	R *float64 `json:"r"`
	G *float64 `json:"g"`
	B *float64 `json:"b"`
}

func (s *Server) handleColorRGBToHSL(args json.RawMessage) (interface{}, error) {
	var a rgbArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requireNumbers([]string{"r", "g", "b"}, a.R, a.G, a.B); err != nil {
		return nil, err
	}
	return colorconv.RGBToHSL(*a.R, *a.G, *a.B), nil
}

type hslArgs struct {
	H *float64 `json:"h"`
	S *float64 `json:"s"`
	L *float64 `json:"l"`
}

func (a hslArgs) validate() error {
	return requireNumbers([]string{"h", "s", "l"}, a.H, a.S, a.L)
}

func (s *Server) handleColorHSLToRGB(args json.RawMessage) (interface{}, error) {
	var a hslArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return colorconv.HSLToRGB(*a.H, *a.S, *a.L), nil
}

type colorSwatchArgs struct {
	hslArgs
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = defaultSwatchSize
	}
	if a.Height == 0 {
		a.Height = defaultSwatchSize
	}
	return imaging.RenderSwatch(colorconv.HSLToRGB(*a.H, *a.S, *a.L), a.Width, a.Height)
}

// === Image Color Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    *int   `json:"x"`
	Y    *int   `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	if err := requireInts([]string{"x", "y"}, a.X, a.Y); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, *a.X, *a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points *[]struct {
		X     *int   `json:"x"`
		Y     *int   `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	if a.Points == nil {
		return nil, fmt.Errorf("missing required argument: points")
	}

	points := make([]imaging.LabeledPoint, len(*a.Points))
	for i, p := range *a.Points {
		if err := requireInts([]string{"x", "y"}, p.X, p.Y); err != nil {
			return nil, fmt.Errorf("points[%d]: %w", i, err)
		}
		points[i] = imaging.LabeledPoint{X: *p.X, Y: *p.Y, Label: p.Label}
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColorsMulti(img, points)
}

type imageDominantColorsArgs struct {
	Path   string `json:"path"`
	Count  int    `json:"count"`
	Region *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = defaultDominantCount
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region *imaging.Region
	if a.Region != nil {
		region = &imaging.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
	}
	return imaging.DominantColors(img, a.Count, region)
}
