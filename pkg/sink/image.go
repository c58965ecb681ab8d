package sink

import (
	"fmt"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"image/png"
	"io"
)

// Image colors each cell with Gradient into an RGB buffer. Row i of the
// raster is row i of the image.
type Image struct {
	img     *RGB
	maxIter int
}

func NewImage(width, height, maxIter int) (*Image, error) {
	img, err := NewRGB(width, height)
	if err != nil {
		return nil, err
	}

	return &Image{img: img, maxIter: maxIter}, nil
}

func (s *Image) Consume(row, col, iterations int) error {
	s.img.SetRGB(col, row, Gradient(iterations, s.maxIter))
	return nil
}

// RGB returns the filled buffer.
func (s *Image) RGB() *RGB {
	return s.img
}

// Encode writes the buffer to w as a PNG.
func (s *Image) Encode(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}

	return nil
}

var _ escape.Sink = (*Image)(nil)
