package escape

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRaster     = errors.New("invalid raster")
	ErrInvalidIterations = errors.New("invalid iteration limit")
	ErrUnknownKind       = errors.New("unknown output kind")
)

// Kind selects the output renderer.
type Kind int

const (
	// Text writes the raw iteration count of every cell.
	Text Kind = iota
	// Image writes a PNG colored by escape speed.
	Image
)

const (
	DefaultWidth  = 2000
	DefaultHeight = 2000

	DefaultTextOutput  = "mandelbrot_data.txt"
	DefaultImageOutput = "mandelbrot_set.png"

	// IterationsPerRow is the empirical ratio between raster height and the
	// iteration limit used when none is set.
	IterationsPerRow = 5
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Image:
		return "image"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k *Kind) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		*k = Text
	case "image", "png":
		*k = Image
	default:
		return fmt.Errorf("%w %q: want text or image", ErrUnknownKind, s)
	}

	return nil
}

func (k *Kind) Type() string {
	return "kind"
}

// Config holds every parameter of a run.
type Config struct {
	Width  int
	Height int
	Region Region

	// MaxIterations bounds each orbit. Zero selects Height/IterationsPerRow.
	MaxIterations int

	// Output is the destination path. Empty selects the default for Kind.
	Output string
	Kind   Kind
}

// DefaultConfig returns the classic view at 2000×2000 written as text.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Region: Classic,
		Kind:   Text,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d, both dimensions must be positive", ErrInvalidRaster, c.Width, c.Height)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterations, c.MaxIterations)
	}
	if c.Kind != Text && c.Kind != Image {
		return fmt.Errorf("%w: %v", ErrUnknownKind, c.Kind)
	}

	return c.Region.Validate()
}

// Iterations returns the iteration limit of the run: MaxIterations when set,
// otherwise Height/IterationsPerRow but never less than one.
func (c Config) Iterations() int {
	if c.MaxIterations > 0 {
		return c.MaxIterations
	}

	return max(c.Height/IterationsPerRow, 1)
}

// OutputPath returns Output, or the default file name for Kind.
func (c Config) OutputPath() string {
	switch {
	case c.Output != "":
		return c.Output
	case c.Kind == Image:
		return DefaultImageOutput
	default:
		return DefaultTextOutput
	}
}
