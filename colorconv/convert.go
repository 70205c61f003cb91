package colorconv

import (
	"math"
)

// Channel bounds for RGB components.
const (
	MinChannel = 0
	MaxChannel = 255
)

// RGB is a red, green, blue channel triple.
//
// Channels are conventionally within [MinChannel, MaxChannel] but nothing in
// this package enforces that.
type RGB struct {
	R int `json:"r"` // Red component (0-255)
	G int `json:"g"` // Green component (0-255)
	B int `json:"b"` // Blue component (0-255)
}

// HSL is a color in the hue, saturation, luminosity model.
type HSL struct {
	H int `json:"h"` // Hue: 0-359 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Luminosity: 0-100 percent
}

// HSL converts the triple with RGBToHSL.
func (c RGB) HSL() HSL {
	return RGBToHSL(float64(c.R), float64(c.G), float64(c.B))
}

// RGB converts the triple with HSLToRGB.
func (c HSL) RGB() RGB {
	return HSLToRGB(float64(c.H), float64(c.S), float64(c.L))
}

// dominant identifies which channel holds the maximum value.
type dominant int

const (
	maxRed dominant = iota
	maxGreen
	maxBlue
)

// dominantChannel reports the channel equal to maxC, preferring red, then
// green, then blue when channels tie.
func dominantChannel(r, g, maxC float64) dominant {
	switch maxC {
	case r:
		return maxRed
	case g:
		return maxGreen
	default:
		return maxBlue
	}
}

// hueSector returns the hue in sixths of the color wheel, within [-1, 5].
func hueSector(d dominant, r, g, b, chroma float64) float64 {
	switch d {
	case maxRed:
		return (g - b) / chroma
	case maxGreen:
		return 2 + (b-r)/chroma
	default:
		return 4 + (r-g)/chroma
	}
}

// RGBToHSL converts red, green and blue channel values to HSL.
//
// The conversion:
//  1. Normalizes each channel to 0-1 by dividing by 255
//  2. Takes the chroma as max - min of the normalized channels
//  3. Derives the hue from whichever channel is maximal (0 when achromatic)
//  4. Derives luminosity as the midpoint of max and min
//  5. Derives saturation as chroma relative to the luminosity's headroom
//
// Hue, saturation and luminosity are rounded half away from zero. A hue that
// rounds up to 360 is reported as 0.
func RGBToHSL(r, g, b float64) HSL {
	r /= MaxChannel
	g /= MaxChannel
	b /= MaxChannel

	maxC := math.Max(r, math.Max(g, b))
	chroma := maxC - math.Min(r, math.Min(g, b))

	var hue float64
	if chroma != 0 {
		hue = 60 * hueSector(dominantChannel(r, g, maxC), r, g, b, chroma)
		if hue < 0 {
			hue += 360
		}
	}

	// 2*maxC - chroma is max + min, twice the luminosity.
	span := 2*maxC - chroma
	lum := span / 2

	var sat float64
	if chroma != 0 {
		if lum <= 0.5 {
			sat = chroma / span
		} else {
			sat = chroma / (2 - span)
		}
	}

	h := int(math.Round(hue))
	if h == 360 {
		h = 0
	}

	return HSL{
		H: h,
		S: int(math.Round(100 * sat)),
		L: int(math.Round(100 * lum)),
	}
}

// Phase offsets into the 12-step hue cycle for each output channel.
const (
	redPhase   = 0
	greenPhase = 8
	bluePhase  = 4
)

// HSLToRGB converts hue (degrees), saturation and luminosity (percent) to RGB.
//
// Each channel is computed as
//
//	l - a * clamp(min(k-3, 9-k), -1, 1)
//
// where a = s * min(l, 1-l) and k = (phase + h/30) mod 12, with phases 0, 8
// and 4 for red, green and blue. Results are rounded but not clamped, so
// out-of-range input can produce channels outside 0-255. Rounding is half away
// from zero, which only matters for negative ties from out-of-range input.
func HSLToRGB(h, s, l float64) RGB {
	s /= 100
	l /= 100
	a := s * math.Min(l, 1-l)

	channel := func(phase float64) int {
		k := math.Mod(phase+h/30, 12)
		v := l - a*math.Max(-1, math.Min(k-3, math.Min(9-k, 1)))
		return int(math.Round(MaxChannel * v))
	}

	return RGB{
		R: channel(redPhase),
		G: channel(greenPhase),
		B: channel(bluePhase),
	}
}
