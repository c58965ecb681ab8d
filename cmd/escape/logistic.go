package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/mandelbrot/pkg/bifurcation"
	"github.com/willbeason/mandelbrot/pkg/output"
)

func logisticCmd() *cobra.Command {
	sweep := bifurcation.DefaultSweep()
	var path string

	cmd := &cobra.Command{
		Use:   "logistic",
		Short: "Write the long-run populations of the logistic map across growth rates as CSV",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			if err := sweep.Validate(); err != nil {
				return err
			}

			f, err := output.Create(path)
			if err != nil {
				return err
			}

			err = bifurcation.WriteCSV(cmd.Context(), f, sweep)
			if err != nil {
				f.Abort()
				return err
			}

			err = f.Commit()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logistic map data saved to %s\n", path)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&sweep.MaxRate, "max-rate", sweep.MaxRate, "largest growth rate swept")
	flags.Float64Var(&sweep.Resolution, "resolution", sweep.Resolution, "growth rate step")
	flags.Float64Var(&sweep.Initial, "initial", sweep.Initial, "starting population in [0, 1]")
	flags.IntVar(&sweep.Warmup, "warmup", sweep.Warmup, "generations run before recording")
	flags.IntVar(&sweep.Record, "record", sweep.Record, "generations recorded per growth rate")
	flags.StringVarP(&path, "output", "o", bifurcation.DefaultOutput,
		"output path, compressed when it ends in .zst")

	return cmd
}
