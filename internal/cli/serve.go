package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecbingo/ecbingo/internal/server"
)

const shutdownTimeout = 10 * time.Second

func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board API over HTTP",
		Long: `Serve the board API over HTTP.

  POST /boards                      new record (?seed=N for a repeatable draw)
  POST /boards/mark/{point}/{name}  mark the record in the body
  POST /boards/unmark/{point}       unmark the record in the body
  POST /boards/render               render the record in the body as PNG
  GET  /healthz                     liveness

Set redis_url to share the emote cache between replicas.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("listen") {
				listen = cfg.Listen
			}
			pool, err := loadPool(cfg)
			if err != nil {
				return err
			}
			r, err := newRenderer(cfg)
			if err != nil {
				return err
			}
			store, err := newCache(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			srv := server.New(pool, r, newCatalog(cfg, store), server.WithLogger(logger))
			ln, err := net.Listen("tcp", listen)
			if err != nil {
				return err
			}
			printInfo(c.stderr, "Listening on %s", ln.Addr())
			printKeyValue(c.stderr, "catalog", cfg.CatalogURL)
			return serve(ctx, ln, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&listen, "listen", ":8080", "address to listen on (overrides the listen setting)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "always download emotes")
	return cmd
}

// serve runs h on ln until ctx ends, then shuts down gracefully. A shutdown
// triggered by ctx is not an error.
func serve(ctx context.Context, ln net.Listener, h http.Handler) error {
	hs := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- hs.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	loggerFromContext(ctx).Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
