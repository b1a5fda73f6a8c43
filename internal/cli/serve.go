package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridatlas/gridatlas/internal/api"
)

// newServeCmd creates the serve command. It exposes the embedding pipeline
// over HTTP until the context is cancelled.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the embedding pipeline over HTTP",
		Long: `Serve starts an HTTP server with the same pipeline the CLI uses:

  POST /v1/embed      embed a problem, optionally validate and render
  POST /v1/validate   check a grid against a problem
  GET  /healthz       liveness probe

The server shuts down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: config, then :8460)")

	return cmd
}

func runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	if addr == "" {
		addr = cfg.Serve.Addr
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           api.NewHandler(logger, cfg.Embed.PositionCap),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
