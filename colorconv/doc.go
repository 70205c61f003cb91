// Package colorconv converts colors between the RGB and HSL color models and
// draws random color components.
//
// # Color Models
//
// RGB colors are integer channel triples, conventionally 0-255 per channel.
// HSL colors carry:
//   - H: hue in whole degrees, 0-359 (0=red, 120=green, 240=blue)
//   - S: saturation in whole percent, 0-100 (0=gray, 100=vivid)
//   - L: luminosity in whole percent, 0-100 (0=black, 50=normal, 100=white)
//
// # Validation
//
// Neither conversion validates or clamps its input. Values outside the
// conventional ranges are extrapolated arithmetically, so HSLToRGB may return
// channels below 0 or above 255 and NaN input yields meaningless output.
// Use RGB.Color when a result must be drawn.
//
// # Round Trips
//
// Both directions round to whole numbers, so RGB -> HSL -> RGB is not exact.
// Primary and gray colors survive unchanged; in general a channel may drift
// by a few units because HSL quantizes to 360*101*101 values while RGB has
// 256^3.
//
// # Randomness
//
// There is no package-level random source. Create a Generator and pass it to
// whatever needs random colors:
//
//	gen := colorconv.NewGenerator()          // crypto-seeded
//	gen := colorconv.NewSeededGenerator(42)  // reproducible
//	c := gen.RGB()
//
// A Generator is safe for concurrent use.
package colorconv
