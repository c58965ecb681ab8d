package escape

import (
	"github.com/willbeason/mandelbrot/pkg/transforms"
	"math"
)

// Mapper maps raster cells onto sample points of a Region.
type Mapper struct {
	Real      transforms.Linear
	Imaginary transforms.Linear

	region Region
}

// NewMapper divides region into a width × height grid. Cell (i, j), with i
// the row and j the column, samples the cell's minimum corner, so every
// sample lies in [XMin, XMax) × [YMin, YMax). Row 0 is YMin.
func NewMapper(region Region, width, height int) Mapper {
	return Mapper{
		Real:      transforms.Span(region.XMin, region.XMax, width),
		Imaginary: transforms.Span(region.YMin, region.YMax, height),
		region:    region,
	}
}

// Sample returns the point c of row i, column j.
func (m Mapper) Sample(i, j int) complex128 {
	return complex(
		below(m.Real.At(j), m.region.XMin, m.region.XMax),
		below(m.Imaginary.At(i), m.region.YMin, m.region.YMax),
	)
}

// below pulls v back under hi when rounding carried it onto the bound. This
// only happens for regions a few ulps wide.
func below(v, lo, hi float64) float64 {
	if v >= hi {
		return math.Nextafter(hi, lo)
	}

	return v
}
