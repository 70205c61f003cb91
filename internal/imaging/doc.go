// Package imaging samples and renders colors for the tool server.
//
// It is the drawing side of colorconv: pixels read from decoded images are
// reported in both RGB and HSL, and HSL or RGB values can be rendered back
// into solid PNG swatches.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner. For
// regions, (x1,y1) is inclusive and (x2,y2) is exclusive.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The sampling and rendering functions
// hold no state.
//
// # Error Handling
//
// Functions return errors for coordinates or regions outside the image,
// empty regions, non-positive counts or sizes, and file or decoding failures.
// Color conversion itself never fails.
package imaging
