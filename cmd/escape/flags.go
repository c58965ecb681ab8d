package main

import (
	"github.com/spf13/pflag"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"strings"
)

var (
	_ pflag.Value = (*escape.Region)(nil)
	_ pflag.Value = (*escape.Kind)(nil)
)

// addConfigFlags binds the fields of cfg to flags, using its current values
// as defaults.
func addConfigFlags(flags *pflag.FlagSet, cfg *escape.Config) {
	flags.IntVar(&cfg.Width, "width", cfg.Width, "raster width in cells")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "raster height in cells")
	flags.Var(&cfg.Region, "region",
		"landmark ("+strings.Join(escape.LandmarkNames(), ", ")+") or xmin,xmax,ymin,ymax")
	flags.IntVar(&cfg.MaxIterations, "max-iter", cfg.MaxIterations,
		"iteration limit per cell; 0 uses height/5")
	flags.VarP(&cfg.Kind, "kind", "k", "output kind: text or image")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output,
		"output path, compressed when it ends in .zst (default "+
			escape.DefaultTextOutput+" or "+escape.DefaultImageOutput+")")
}
