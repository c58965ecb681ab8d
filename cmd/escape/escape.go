package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/output"
	"github.com/willbeason/mandelbrot/pkg/sink"
	"io"
	"log"
	"os"
	"os/signal"
)

// ProgressRows is how often image renders log their progress.
const ProgressRows = 100

func mainCmd() *cobra.Command {
	cfg := escape.DefaultConfig()
	var paramsPath string

	cmd := &cobra.Command{
		Use:   "escape",
		Short: "Render the Mandelbrot set as a grid of iteration counts or a PNG",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, cfg, paramsPath)
		},
	}

	addConfigFlags(cmd.Flags(), &cfg)
	cmd.Flags().StringVar(&paramsPath, "params", "",
		"also write the run parameters as key: value lines to this path")

	cmd.AddCommand(serveCmd(), logisticCmd())

	return cmd
}

func runCmd(cmd *cobra.Command, cfg escape.Config, paramsPath string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	if err := cfg.Validate(); err != nil {
		return err
	}

	path := cfg.OutputPath()
	f, err := output.Create(path)
	if err != nil {
		return err
	}

	// The params file is opened up front so a bad path fails before any
	// output appears.
	var params *output.File
	if paramsPath != "" {
		params, err = output.Create(paramsPath)
		if err != nil {
			f.Abort()
			return err
		}
	}

	abort := func() {
		f.Abort()
		if params != nil {
			params.Abort()
		}
	}

	err = render(cmd.Context(), cfg, f)
	if err != nil {
		abort()
		return err
	}

	if params != nil {
		err = output.WriteParams(params, cfg)
		if err != nil {
			abort()
			return fmt.Errorf("writing params: %w", err)
		}
	}

	err = f.Commit()
	if err != nil {
		if params != nil {
			params.Abort()
		}
		return err
	}

	if params != nil {
		err = params.Commit()
		if err != nil {
			_ = os.Remove(path)
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Mandelbrot set calculation finished and saved to %s\n", path)

	return nil
}

// render evaluates cfg into w in the format selected by cfg.Kind.
func render(ctx context.Context, cfg escape.Config, w io.Writer) error {
	switch cfg.Kind {
	case escape.Image:
		s, err := sink.NewImage(cfg.Width, cfg.Height, cfg.Iterations())
		if err != nil {
			return err
		}

		err = escape.Evaluate(ctx, cfg, s, logProgress(ProgressRows))
		if err != nil {
			return err
		}

		return s.Encode(w)
	default:
		s := sink.NewText(w, cfg.Width)

		err := escape.Evaluate(ctx, cfg, s, nil)
		if err != nil {
			return err
		}

		return s.Flush()
	}
}

func logProgress(every int) escape.ProgressFunc {
	return func(rows, total int) {
		if rows%every == 0 {
			log.Printf("progress: %d%%", 100*rows/total)
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		stop()
		os.Exit(1)
	}
}
