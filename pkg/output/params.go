package output

import (
	"bufio"
	"fmt"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteParams writes the parameters of cfg as "key: value" lines, the format
// read by the plotting pipeline next to a text grid. Floats always carry a
// decimal point so they are not read back as integers.
func WriteParams(w io.Writer, cfg escape.Config) error {
	bw := bufio.NewWriter(w)

	lines := []struct {
		key   string
		value string
	}{
		{"Width", strconv.Itoa(cfg.Width)},
		{"Height", strconv.Itoa(cfg.Height)},
		{"X_min", formatFloat(cfg.Region.XMin)},
		{"X_max", formatFloat(cfg.Region.XMax)},
		{"Y_min", formatFloat(cfg.Region.YMin)},
		{"Y_max", formatFloat(cfg.Region.YMax)},
		{"Max_iter", strconv.Itoa(cfg.Iterations())},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(bw, "%s: %s\n", l.key, l.value); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// SaveParams writes the parameters of cfg to path.
func SaveParams(path string, cfg escape.Config) error {
	f, err := Create(path)
	if err != nil {
		return err
	}

	if err := WriteParams(f, cfg); err != nil {
		f.Abort()
		return fmt.Errorf("writing params: %w", err)
	}

	return f.Commit()
}

// ReadParams parses "key: value" lines as written by WriteParams.
func ReadParams(r io.Reader) (map[string]string, error) {
	params := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("malformed params line %q", line)
		}
		params[key] = value
	}

	return params, scanner.Err()
}

// LoadParams reads a params file back into a Config. Output and Kind are
// not recorded and keep their zero values.
func LoadParams(path string) (escape.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return escape.Config{}, err
	}
	defer f.Close()

	params, err := ReadParams(f)
	if err != nil {
		return escape.Config{}, fmt.Errorf("reading %q: %w", path, err)
	}

	var cfg escape.Config
	ints := map[string]*int{"Width": &cfg.Width, "Height": &cfg.Height, "Max_iter": &cfg.MaxIterations}
	floats := map[string]*float64{
		"X_min": &cfg.Region.XMin, "X_max": &cfg.Region.XMax,
		"Y_min": &cfg.Region.YMin, "Y_max": &cfg.Region.YMax,
	}

	for key, dst := range ints {
		v, err := strconv.Atoi(params[key])
		if err != nil {
			return escape.Config{}, fmt.Errorf("param %s: %w", key, err)
		}
		*dst = v
	}
	for key, dst := range floats {
		v, err := strconv.ParseFloat(params[key], 64)
		if err != nil {
			return escape.Config{}, fmt.Errorf("param %s: %w", key, err)
		}
		*dst = v
	}

	return cfg, cfg.Validate()
}
