package sink

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

// BytesPerPixel is the stride of one RGB pixel.
const BytesPerPixel = 3

// MaxPixelBytes caps the size of a pixel buffer.
const MaxPixelBytes = 1 << 30

var ErrAllocation = errors.New("cannot allocate pixel buffer")

// RGB is an opaque image stored row-major with three bytes (R, G, B) per
// pixel and no padding between rows.
type RGB struct {
	Pix  []uint8
	Rect image.Rectangle
}

// NewRGB allocates a width × height buffer.
func NewRGB(width, height int) (*RGB, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrAllocation, width, height)
	}
	if width > math.MaxInt/height/BytesPerPixel || width*height*BytesPerPixel > MaxPixelBytes {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d bytes", ErrAllocation, width, height, MaxPixelBytes)
	}

	return &RGB{
		Pix:  make([]uint8, width*height*BytesPerPixel),
		Rect: image.Rect(0, 0, width, height),
	}, nil
}

func (p *RGB) offset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Rect.Dx()*BytesPerPixel + (x-p.Rect.Min.X)*BytesPerPixel
}

func (p *RGB) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *RGB) Bounds() image.Rectangle {
	return p.Rect
}

func (p *RGB) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

func (p *RGB) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return color.RGBA{}
	}

	i := p.offset(x, y)
	s := p.Pix[i : i+BytesPerPixel : i+BytesPerPixel]
	return color.RGBA{R: s[0], G: s[1], B: s[2], A: 255}
}

// SetRGB stores c, dropping its alpha.
func (p *RGB) SetRGB(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}

	i := p.offset(x, y)
	s := p.Pix[i : i+BytesPerPixel : i+BytesPerPixel]
	s[0], s[1], s[2] = c.R, c.G, c.B
}

// Opaque lets the PNG encoder write three-channel truecolor.
func (p *RGB) Opaque() bool {
	return true
}

var _ image.Image = (*RGB)(nil)
