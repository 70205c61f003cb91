package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/halex22/uber-color/colorconv"
)

// MaxSwatchSize bounds each side of a rendered swatch in pixels.
const MaxSwatchSize = 4096

// SwatchResult contains a solid color swatch encoded as base64 PNG.
type SwatchResult struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	RGB         colorconv.RGB `json:"rgb"`
	InGamut     bool          `json:"in_gamut"` // false if RGB was clamped for drawing
	ImageBase64 string        `json:"image_base64"`
	MimeType    string        `json:"mime_type"`
}

// RenderSwatch fills a width x height image with c and encodes it as PNG.
//
// Channels outside 0-255 are clamped for drawing only; the reported RGB is c
// unchanged and InGamut tells the caller whether clamping happened.
func RenderSwatch(c colorconv.RGB, width, height int) (*SwatchResult, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid swatch size %dx%d: width and height must be positive", width, height)
	}
	if width > MaxSwatchSize || height > MaxSwatchSize {
		return nil, fmt.Errorf("invalid swatch size %dx%d: maximum is %d", width, height, MaxSwatchSize)
	}

	img := imaging.New(width, height, c.Color())

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       width,
		Height:      height,
		RGB:         c,
		InGamut:     c.InGamut(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
