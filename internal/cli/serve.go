package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/divyakjce123/3d-warehouse-visualizer/internal/server"
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/cache"
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/pipeline"
)

// serveCommand creates the serve command for running the layout HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout HTTP API server",
		Long: `Run the layout HTTP API server.

The server exposes layout computation and validation over HTTP:

  POST /api/v1/layout        compute a layout from a posted configuration
  GET  /api/v1/layout/{id}   fetch a previously computed layout
  POST /api/v1/validate      validate a configuration
  GET  /healthz              liveness check
  GET  /version              build information

By default, layouts are cached in the local file cache. Pass --redis to share
the cache between replicas.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisURL, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "redis URL for a shared cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe builds the cache backend and runs the server until shutdown.
func (c *CLI) runServe(ctx context.Context, addr, redisURL string, noCache bool) error {
	store, err := c.newServeCache(ctx, redisURL, noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	runner := pipeline.NewRunner(store, nil, c.Logger)
	defer runner.Close()

	c.Logger.Info("starting server", "addr", addr)
	return server.New(addr, runner, c.Logger).Run()
}

// newServeCache picks the cache backend for the server: redis when a URL is
// given, the local file cache otherwise.
func (c *CLI) newServeCache(ctx context.Context, redisURL string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisURL != "" {
		return cache.NewRedisCache(ctx, redisURL)
	}
	return newCache(false)
}
