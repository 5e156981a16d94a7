package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/initstate/pkg/cache"
	"github.com/matzehuels/initstate/pkg/io"
	"github.com/matzehuels/initstate/pkg/layout"
	"github.com/matzehuels/initstate/pkg/linkgraph"
	"github.com/matzehuels/initstate/pkg/merge"
	"github.com/matzehuels/initstate/pkg/observability"
	"github.com/matzehuels/initstate/pkg/panel"
	"github.com/matzehuels/initstate/pkg/render/nodelink"
	"github.com/matzehuels/initstate/pkg/render/tiles"
	"github.com/matzehuels/initstate/pkg/report"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	var diags report.Collector
	opts.Reporter = r.reporter(&diags, opts.Reporter)
	result := &Result{}
	hooks := observability.Pipeline()

	// Stage 1: Load
	start := time.Now()
	hooks.OnLoadStart(ctx, len(opts.Files)+len(opts.Inputs))
	seq, err := r.Load(ctx, opts)
	hooks.OnLoadComplete(ctx, len(seq), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Sequence = seq
	result.Stats.LoadTime = time.Since(start)
	result.Stats.Panels = len(seq)

	r.Logger.Debug("loaded initial state",
		"panels", len(seq),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	start = time.Now()
	hooks.OnLayoutStart(ctx, len(seq))
	grid, g, err := r.Layout(seq, opts)
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, 0, time.Since(start), err)
		return nil, fmt.Errorf("layout: %w", err)
	}
	hooks.OnLayoutComplete(ctx, grid.Rows, g.EdgeCount(), time.Since(start), nil)
	result.Grid, result.Graph = grid, g
	result.Stats.LayoutTime = time.Since(start)
	result.Stats.Rows = grid.Rows
	result.Stats.Links = g.EdgeCount()

	r.Logger.Debug("computed layout",
		"rows", grid.Rows,
		"links", g.EdgeCount(),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	start = time.Now()
	hooks.OnRenderStart(ctx, string(opts.Format))
	result.Tiles = r.RenderTiles(grid, opts)
	out, err := r.RenderNetwork(ctx, g, opts)
	hooks.OnRenderComplete(ctx, string(opts.Format), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Network = out
	result.CacheInfo.NetworkHit = out.Cached
	result.Stats.RenderTime = time.Since(start)

	r.Logger.Debug("rendered outputs",
		"format", opts.Format,
		"cached", out.Cached,
		"duration", result.Stats.RenderTime)

	result.Diagnostics = diags.Diagnostics()
	return result, nil
}

// Load reads opts.Files, appends opts.Inputs and merges everything into one
// sequence.
func (r *Runner) Load(ctx context.Context, opts Options) (panel.Sequence, error) {
	inputs, err := io.ImportFiles(opts.Files)
	if err != nil {
		return nil, err
	}
	inputs = append(inputs, opts.Inputs...)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return merge.Merge(inputs, merge.Options{
		Deduplicate: opts.Deduplicate,
		Registry:    opts.Registry,
		ExtraTypes:  opts.ExtraTypes,
		Reporter:    opts.Reporter,
	})
}

// Layout packs seq into the tile grid and derives its link graph.
func (r *Runner) Layout(seq panel.Sequence, opts Options) (layout.Grid, *linkgraph.Graph, error) {
	reg := opts.registry()
	grid, err := layout.NewPacker(reg, opts.Reporter).Pack(seq)
	if err != nil {
		return layout.Grid{}, nil, err
	}
	return grid, linkgraph.NewBuilder(reg, opts.Reporter).Build(seq), nil
}

// RenderTiles draws the grid as SVG.
func (r *Runner) RenderTiles(grid layout.Grid, opts Options) []byte {
	var tileOpts []tiles.Option
	if opts.InvertRows {
		tileOpts = append(tileOpts, tiles.WithInvertRows())
	}
	if opts.Legend {
		tileOpts = append(tileOpts, tiles.WithLegend())
	}
	return tiles.RenderSVG(grid, tileOpts...)
}

// RenderNetwork draws the link graph in opts.Format. Static renders go
// through the runner's cache unless opts.Refresh is set.
func (r *Runner) RenderNetwork(ctx context.Context, g *linkgraph.Graph, opts Options) (*nodelink.Output, error) {
	nlOpts := nodelink.Options{
		Detailed: opts.Detailed,
		Title:    opts.Title,
		Keyer:    r.Keyer,
		TTL:      opts.CacheTTL,
	}
	if !opts.Refresh {
		nlOpts.Cache = r.Cache
	}
	return nodelink.Render(ctx, g, opts.Format, nlOpts)
}

// reporter fans diagnostics out to the collector, the runner's logger and
// the caller's reporter.
func (r *Runner) reporter(c *report.Collector, extra report.Reporter) report.Reporter {
	tee := report.Tee{c, report.NewLogReporter(r.Logger)}
	if extra != nil {
		tee = append(tee, extra)
	}
	return tee
}
