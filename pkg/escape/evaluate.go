package escape

import (
	"context"
	"fmt"
	"github.com/willbeason/mandelbrot/pkg/transforms"
)

// A Sink consumes the iteration count of each cell. Evaluate delivers cells
// in row-major order, exactly once each.
type Sink interface {
	Consume(row, col, iterations int) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(row, col, iterations int) error

func (f SinkFunc) Consume(row, col, iterations int) error {
	return f(row, col, iterations)
}

// ProgressFunc is told how many of total rows are complete.
type ProgressFunc func(rows, total int)

// Iterate returns the iteration count of the single cell (row, col). Cells
// do not depend on one another.
func Iterate(cfg Config, row, col int) int {
	m := NewMapper(cfg.Region, cfg.Width, cfg.Height)
	return transforms.Mandelbrot{MaxIterations: cfg.Iterations()}.Escape(m.Sample(row, col))
}

// Evaluate runs the escape-time iteration over every cell of cfg's raster
// and hands each count to sink. ctx is checked between rows.
func Evaluate(ctx context.Context, cfg Config, sink Sink, progress ProgressFunc) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	m := NewMapper(cfg.Region, cfg.Width, cfg.Height)
	escaper := transforms.Mandelbrot{MaxIterations: cfg.Iterations()}

	for i := 0; i < cfg.Height; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("evaluating row %d: %w", i, err)
		}

		for j := 0; j < cfg.Width; j++ {
			n := escaper.Escape(m.Sample(i, j))
			if err := sink.Consume(i, j, n); err != nil {
				return fmt.Errorf("cell (%d, %d): %w", i, j, err)
			}
		}

		if progress != nil {
			progress(i+1, cfg.Height)
		}
	}

	return nil
}
