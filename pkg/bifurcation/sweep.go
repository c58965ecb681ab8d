// Package bifurcation samples the long-run populations of the logistic map
// across a range of growth rates.
package bifurcation

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"github.com/willbeason/mandelbrot/pkg/transforms"
	"io"
	"strconv"
)

var ErrInvalidSweep = errors.New("invalid sweep")

const DefaultOutput = "logistic_map_data.csv"

// Header is the first row of the CSV written by WriteCSV.
var Header = []string{"Growth Rate", "Population"}

// Sweep steps the growth rate from 0 by Resolution while it stays below
// MaxRate - Resolution. For each rate the population starts at Initial,
// runs Warmup generations unrecorded, then records the next Record.
type Sweep struct {
	MaxRate    float64
	Resolution float64
	Initial    float64
	Warmup     int
	Record     int
}

// Point is one recorded generation.
type Point struct {
	Rate       float64
	Population float64
}

func DefaultSweep() Sweep {
	return Sweep{
		MaxRate:    4,
		Resolution: 0.001,
		Initial:    0.4,
		Warmup:     50,
		Record:     100,
	}
}

func (s Sweep) Validate() error {
	if !(s.Resolution > 0) {
		return fmt.Errorf("%w: resolution %v must be positive", ErrInvalidSweep, s.Resolution)
	}
	if !(s.MaxRate > 0) || s.MaxRate/s.Resolution > 1e8 {
		return fmt.Errorf("%w: max rate %v at resolution %v", ErrInvalidSweep, s.MaxRate, s.Resolution)
	}
	if !(s.Initial >= 0 && s.Initial <= 1) {
		return fmt.Errorf("%w: initial population %v outside [0, 1]", ErrInvalidSweep, s.Initial)
	}
	if s.Warmup < 0 || s.Record <= 0 {
		return fmt.Errorf("%w: warmup %d, record %d", ErrInvalidSweep, s.Warmup, s.Record)
	}

	return nil
}

// Run hands every recorded point to fn in order of increasing rate. The rate
// is accumulated by repeated addition, so later rates carry its rounding.
func (s Sweep) Run(ctx context.Context, fn func(Point) error) error {
	if err := s.Validate(); err != nil {
		return err
	}

	for rate := 0.0; rate < s.MaxRate-s.Resolution; rate += s.Resolution {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("sweeping rate %v: %w", rate, err)
		}

		l := transforms.Logistic{Rate: rate}
		x := l.Iterate(s.Initial, s.Warmup)

		for g := 0; g < s.Record; g++ {
			x = l.Next(x)
			if err := fn(Point{Rate: rate, Population: x}); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteCSV writes the header and every point of s to w.
func WriteCSV(ctx context.Context, w io.Writer, s Sweep) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}

	record := make([]string, 2)
	err := s.Run(ctx, func(p Point) error {
		record[0] = strconv.FormatFloat(p.Rate, 'g', -1, 64)
		record[1] = strconv.FormatFloat(p.Population, 'g', -1, 64)
		return cw.Write(record)
	})
	if err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
