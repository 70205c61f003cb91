package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/halex22/uber-color/colorconv"
)

// ColorResult contains one pixel's color in RGB and HSL form.
//
// Alpha is reported separately; the HSL value is derived from the RGB
// channels only and ignores transparency.
type ColorResult struct {
	RGB   colorconv.RGB `json:"rgb"`   // RGB components (0-255)
	Alpha int           `json:"alpha"` // Opacity (0=transparent, 255=opaque)
	HSL   colorconv.HSL `json:"hsl"`   // HSL representation of RGB
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y).
//   - error: Non-nil if coordinates are outside the image bounds.
//
// # Color Conversion
//
// The native color is reduced to 8-bit components by right-shifting the
// 16-bit values from color.Color.RGBA. Those components are premultiplied by
// alpha, so fully transparent pixels report black.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if !image.Pt(x, y).In(bounds) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, a := img.At(x, y).RGBA()
	rgb := colorconv.RGB{R: int(r >> 8), G: int(g >> 8), B: int(b >> 8)}

	return &ColorResult{
		RGB:   rgb,
		Alpha: int(a >> 8),
		HSL:   rgb.HSL(),
	}, nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains color samples from multiple points, in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti extracts colors at multiple pixel coordinates in a single call.
//
// On error no partial results are returned.
//
// # Example
//
//	points := []imaging.LabeledPoint{
//	    {X: 10, Y: 20, Label: "background"},
//	    {X: 50, Y: 100, Label: "text"},
//	}
//	result, err := imaging.SampleColorsMulti(img, points)
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the top-left corner (inclusive) and (X2, Y2) the bottom-right
// corner (exclusive).
type Region struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// ColorFrequency represents a quantized color and its share of the pixels.
type ColorFrequency struct {
	Percentage float64       `json:"percentage"` // Share of pixels with this color (0-100)
	RGB        colorconv.RGB `json:"rgb"`        // Quantized RGB components
	HSL        colorconv.HSL `json:"hsl"`        // HSL of the quantized color
}

// DominantColorsResult contains the most frequent colors, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// quantStep groups channels into bins of this width.
const quantStep = 16

// DominantColors extracts the N most common colors from an image or region.
//
// Parameters:
//   - img: The source image to analyze.
//   - count: Maximum number of colors to return; must be positive.
//   - region: Optional rectangle to analyze. If nil, the entire image is used.
//     The region must lie within the image and be non-empty.
//
// # Color Quantization
//
// Similar colors are grouped by flooring every channel to a multiple of 16:
//
//	quantized = (original / 16) * 16
//
// Colors with equal frequency are ordered by R, then G, then B so results are
// deterministic.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds := img.Bounds()
	if region != nil {
		r := image.Rect(region.X1, region.Y1, region.X2, region.Y2)
		if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
			return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
		}
		if !r.In(bounds) {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds", region.X1, region.Y1, region.X2, region.Y2)
		}
		bounds = r
	}

	counts := make(map[colorconv.RGB]int)
	total := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			key := colorconv.RGB{
				R: int(r>>8) / quantStep * quantStep,
				G: int(g>>8) / quantStep * quantStep,
				B: int(b>>8) / quantStep * quantStep,
			}
			counts[key]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for rgb, n := range counts {
		colors = append(colors, ColorFrequency{
			Percentage: float64(n) / float64(total) * 100,
			RGB:        rgb,
			HSL:        rgb.HSL(),
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		a, b := colors[i].RGB, colors[j].RGB
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		return a.B < b.B
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}
