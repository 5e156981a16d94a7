package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/initstate/internal/server"
	"github.com/matzehuels/initstate/pkg/cache"
	"github.com/matzehuels/initstate/pkg/pipeline"
)

// serveCommand creates the serve command that runs the preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		in    inputFlags
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve FILE...",
		Short: "Preview tiles and selection links in the browser",
		Long: `Serve a live preview of one or more initial states.

Pages:
  /              overview with tiles, links and warnings
  /tiles.svg     tile layout
  /network.svg   selection links (Graphviz)
  /network.html  selection links (interactive)
  /panels.json   merged initial state
  /grid.json     packed grid
  /graph.json    link graph
  /healthz       load status

With --watch the inputs are reloaded whenever one of the files changes.
Rendered diagrams are cached in memory, or in Redis with --redis-url.`,
		Example: `  initstate serve state.json --watch
  initstate serve a.json b.json --addr :9000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			store, err := c.serveCache(cmd.Context())
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(store, c.newKeyer(), logger)
			defer runner.Cache.Close()

			srv := server.New(server.Config{
				Addr:    c.config().Serve.Addr,
				Runner:  runner,
				Options: c.pipelineOptions(args, in),
				Watch:   watch,
				Logger:  logger,
			})
			return srv.Serve(cmd.Context())
		},
	}

	cmd.Flags().String("addr", "", "listen address (default: 127.0.0.1:8080)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload when an input file changes")
	cmd.Flags().Bool("invert", false, "draw the first row at the bottom")
	cmd.Flags().Bool("legend", true, "add a legend of panel types")
	cmd.Flags().Bool("detailed", false, "show type, width and parameters in node labels")
	cmd.Flags().String("redis-url", "", "share rendered diagrams through Redis (redis://host:port/db)")
	addInputFlags(cmd, &in)

	return cmd
}

// serveCache returns the render cache of the preview server: Redis when
// configured, else process memory. --no-cache disables both.
func (c *CLI) serveCache(ctx context.Context) (cache.Cache, error) {
	cfg := c.config()
	switch {
	case cfg.Cache.Disabled:
		return cache.NewNullCache(), nil
	case cfg.Cache.RedisURL != "":
		return cache.NewRedisCache(ctx, cfg.Cache.RedisURL, "initstate:")
	default:
		return cache.NewMemoryCache(), nil
	}
}
