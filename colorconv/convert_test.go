package colorconv

import (
	"fmt"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestRGBToHSL_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    HSL
	}{
		{"red", 255, 0, 0, HSL{0, 100, 50}},
		{"green", 0, 255, 0, HSL{120, 100, 50}},
		{"blue", 0, 0, 255, HSL{240, 100, 50}},
		{"black", 0, 0, 0, HSL{0, 0, 0}},
		{"white", 255, 255, 255, HSL{0, 0, 100}},
		{"yellow", 255, 255, 0, HSL{60, 100, 50}},
		{"cyan", 0, 255, 255, HSL{180, 100, 50}},
		{"magenta", 255, 0, 255, HSL{300, 100, 50}},
		{"gray", 128, 128, 128, HSL{0, 0, 50}},
		{"dark red", 200, 0, 0, HSL{0, 100, 39}},
		{"pink", 255, 128, 128, HSL{0, 100, 75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBToHSL(tt.r, tt.g, tt.b))
		})
	}
}

func TestRGBToHSL_DominantChannelBranches(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    dominant
		wantHue int
	}{
		{"red max", 255, 64, 0, maxRed, 15},
		{"red max below green-blue axis", 255, 0, 64, maxRed, 345},
		{"green max", 64, 255, 0, maxGreen, 105},
		{"blue max", 0, 64, 255, maxBlue, 225},
		{"red ties green", 255, 255, 0, maxRed, 60},
		{"green ties blue", 0, 255, 255, maxGreen, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maxC := math.Max(tt.r, math.Max(tt.g, tt.b)) / 255
			assert.Equal(t, tt.want, dominantChannel(tt.r/255, tt.g/255, maxC))
			assert.Equal(t, tt.wantHue, RGBToHSL(tt.r, tt.g, tt.b).H)
		})
	}
}

func TestRGBToHSL_HueWrapsTo0(t *testing.T) {
	// Raw hue is 359.76 degrees.
	got := RGBToHSL(255, 0, 1)
	assert.Equal(t, HSL{0, 100, 50}, got)
}

func TestRGBToHSL_Achromatic(t *testing.T) {
	for v := 0; v <= 255; v++ {
		got := RGBToHSL(float64(v), float64(v), float64(v))
		want := HSL{0, 0, int(math.Round(float64(v) / 255 * 100))}
		if got != want {
			t.Fatalf("RGBToHSL(%d,%d,%d) = %+v, want %+v", v, v, v, got, want)
		}
	}
}

func TestRGBToHSL_Ranges(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				hsl := RGBToHSL(float64(r), float64(g), float64(b))
				if hsl.H < 0 || hsl.H >= 360 || hsl.S < 0 || hsl.S > 100 || hsl.L < 0 || hsl.L > 100 {
					t.Fatalf("RGBToHSL(%d,%d,%d) = %+v out of range", r, g, b, hsl)
				}
			}
		}
	}
}

func TestHSLToRGB_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{"red", 0, 100, 50, RGB{255, 0, 0}},
		{"green", 120, 100, 50, RGB{0, 255, 0}},
		{"blue", 240, 100, 50, RGB{0, 0, 255}},
		{"yellow", 60, 100, 50, RGB{255, 255, 0}},
		{"black", 0, 0, 0, RGB{0, 0, 0}},
		{"white", 0, 0, 100, RGB{255, 255, 255}},
		{"hue 360 equals hue 0", 360, 100, 50, RGB{255, 0, 0}},
		{"zero saturation ignores hue", 200, 0, 50, RGB{128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HSLToRGB(tt.h, tt.s, tt.l))
		})
	}
}

func TestHSLToRGB_Unclamped(t *testing.T) {
	got := HSLToRGB(0, 100, 150)
	assert.Equal(t, RGB{255, 510, 510}, got)
	assert.False(t, got.InGamut())
}

func TestHSLToRGB_NegativeHueUsesTruncatedRemainder(t *testing.T) {
	assert.Equal(t, RGB{255, 0, 255}, HSLToRGB(-120, 100, 50))
}

func TestHSLToRGB_MatchesColorful(t *testing.T) {
	for h := 0; h < 360; h += 15 {
		for s := 0; s <= 100; s += 10 {
			for l := 0; l <= 100; l += 10 {
				got := HSLToRGB(float64(h), float64(s), float64(l))
				wr, wg, wb := colorful.Hsl(float64(h), float64(s)/100, float64(l)/100).RGB255()
				name := fmt.Sprintf("hsl(%d,%d,%d)", h, s, l)
				assert.InDelta(t, int(wr), got.R, 1, name)
				assert.InDelta(t, int(wg), got.G, 1, name)
				assert.InDelta(t, int(wb), got.B, 1, name)
			}
		}
	}
}

func TestRoundTrip_ExactColors(t *testing.T) {
	colors := []RGB{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{255, 255, 0}, {0, 255, 255}, {255, 0, 255},
		{0, 0, 0}, {255, 255, 255},
	}
	for _, c := range colors {
		assert.Equal(t, c, c.HSL().RGB())
	}
}

func TestRoundTrip_GraysWithinOne(t *testing.T) {
	for v := 0; v <= 255; v++ {
		c := RGB{v, v, v}
		got := c.HSL().RGB()
		assert.InDelta(t, v, got.R, 1)
		assert.Equal(t, got.R, got.G)
		assert.Equal(t, got.R, got.B)
	}
}

// Whole-number H, S and L each lose up to half a unit; the combined error is
// bounded by 5.33 channel units.
const roundTripTolerance = 5

func TestRoundTrip_Drift(t *testing.T) {
	for r := 0; r <= 255; r += 5 {
		for g := 0; g <= 255; g += 5 {
			for b := 0; b <= 255; b += 5 {
				c := RGB{r, g, b}
				got := c.HSL().RGB()
				if abs(got.R-r) > roundTripTolerance || abs(got.G-g) > roundTripTolerance || abs(got.B-b) > roundTripTolerance {
					t.Fatalf("round trip %+v -> %+v -> %+v exceeds ±%d", c, c.HSL(), got, roundTripTolerance)
				}
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
