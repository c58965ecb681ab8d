package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/stream"
	"log"
	"net/http"
	"time"
)

func serveCmd() *cobra.Command {
	cfg := escape.DefaultConfig()
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the configured render over HTTP and stream its rows over a websocket",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			if err := cfg.Validate(); err != nil {
				return err
			}

			return serve(cmd.Context(), addr, cfg)
		},
	}

	addConfigFlags(cmd.Flags(), &cfg)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")

	return cmd
}

// serve runs an HTTP server for cfg until ctx is cancelled.
func serve(ctx context.Context, addr string, cfg escape.Config) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           stream.NewHandler(cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on http://localhost%s (/mandelbrot.txt, /mandelbrot.png, /ws)", addr)
	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	return nil
}
