package escape

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrInvalidRegion = errors.New("invalid region")
	ErrUnknownRegion = errors.New("unknown region")
)

// Region is a rectangle of the complex plane.
type Region struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Classic is the view of the whole set sampled by default.
var Classic = Region{XMin: -2.0, XMax: 1.0, YMin: -1.5, YMax: 1.5}

// Landmarks are named regions accepted by Region.Set.
var Landmarks = map[string]Region{
	"classic": Classic,

	// Wider square view, leaving margin around the set.
	"full": {XMin: -2.5, XMax: 1.5, YMin: -2.0, YMax: 2.0},

	// Dense filaments and repeating curls.
	"seahorse-valley": {XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15},

	// Large bulb with trunk-like tendrils.
	"elephant-valley": {XMin: -1.85, XMax: -1.75, YMin: -0.10, YMax: -0.02},

	// Small copy of the set with tight spiral arms.
	"spiral-minibrot": {XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325},

	"triple-spiral":        {XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980},
	"valley-of-the-dragon": {XMin: -0.7400, XMax: -0.7350, YMin: 0.1800, YMax: 0.1850},

	// Self-similar copy inside a spiral arm.
	"minibrot-in-mini-spiral": {XMin: -1.7390, XMax: -1.7375, YMin: -0.0235, YMax: -0.0220},
}

// LandmarkNames returns the names of Landmarks in sorted order.
func LandmarkNames() []string {
	names := make([]string, 0, len(Landmarks))
	for name := range Landmarks {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Validate reports whether r has a positive width and height. NaN bounds
// fail both comparisons and are rejected.
func (r Region) Validate() error {
	if !(r.XMin < r.XMax) {
		return fmt.Errorf("%w: x bounds [%v, %v] are not increasing", ErrInvalidRegion, r.XMin, r.XMax)
	}
	if !(r.YMin < r.YMax) {
		return fmt.Errorf("%w: y bounds [%v, %v] are not increasing", ErrInvalidRegion, r.YMin, r.YMax)
	}
	if math.IsInf(r.XMax-r.XMin, 0) || math.IsInf(r.YMax-r.YMin, 0) {
		return fmt.Errorf("%w: unbounded", ErrInvalidRegion)
	}

	return nil
}

// Contains reports whether c lies in the half-open rectangle
// [XMin, XMax) × [YMin, YMax).
func (r Region) Contains(c complex128) bool {
	return real(c) >= r.XMin && real(c) < r.XMax &&
		imag(c) >= r.YMin && imag(c) < r.YMax
}

// String formats r as the comma-separated bounds accepted by Set.
func (r Region) String() string {
	return strings.Join([]string{
		strconv.FormatFloat(r.XMin, 'g', -1, 64),
		strconv.FormatFloat(r.XMax, 'g', -1, 64),
		strconv.FormatFloat(r.YMin, 'g', -1, 64),
		strconv.FormatFloat(r.YMax, 'g', -1, 64),
	}, ",")
}

// Set parses either a landmark name or "xmin,xmax,ymin,ymax".
func (r *Region) Set(s string) error {
	s = strings.TrimSpace(s)
	if landmark, ok := Landmarks[strings.ToLower(s)]; ok {
		*r = landmark
		return nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return fmt.Errorf("%w %q: want a landmark (%s) or xmin,xmax,ymin,ymax",
			ErrUnknownRegion, s, strings.Join(LandmarkNames(), ", "))
	}

	var bounds [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("parsing region bound %q: %w", p, err)
		}
		bounds[i] = v
	}

	parsed := Region{XMin: bounds[0], XMax: bounds[1], YMin: bounds[2], YMax: bounds[3]}
	if err := parsed.Validate(); err != nil {
		return err
	}

	*r = parsed
	return nil
}

func (r *Region) Type() string {
	return "region"
}
