package colorconv

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color returns c as a drawable color.Color. Channels outside 0-255 are
// clamped to the displayable gamut; c itself is left untouched.
func (c RGB) Color() color.Color {
	return colorful.Color{
		R: float64(c.R) / MaxChannel,
		G: float64(c.G) / MaxChannel,
		B: float64(c.B) / MaxChannel,
	}.Clamped()
}

// InGamut reports whether every channel lies within [MinChannel, MaxChannel].
func (c RGB) InGamut() bool {
	return inRange(c.R) && inRange(c.G) && inRange(c.B)
}

func inRange(v int) bool {
	return v >= MinChannel && v <= MaxChannel
}
