package sink

import "image/color"

// Interior is the color of points that never escaped.
var Interior = color.RGBA{R: 0, G: 0, B: 255, A: 255}

// Gradient colors an iteration count on a blue-to-red ramp keyed to escape
// speed. Counts equal to maxIter are presumed members of the set.
func Gradient(n, maxIter int) color.RGBA {
	if n >= maxIter {
		return Interior
	}

	r := uint8(255 * n / maxIter)
	return color.RGBA{R: r, G: 0, B: 255 - r, A: 255}
}
