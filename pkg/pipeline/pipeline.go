// Package pipeline runs the complete load → pack → link → render flow that
// both the CLI and the preview server use.
//
// # Stages
//
//  1. Load: read sequence files (or take in-memory sequences) and merge them
//  2. Layout: pack the merged sequence into the 12-column grid and derive
//     the selection-link graph
//  3. Render: draw the tile SVG and the link network in the requested format
//
// Each stage can be run on its own through the [Runner] methods, or all of
// them through [Runner.Execute]:
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Files = []string{"a.json", "b.yaml"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("tiles.svg", result.Tiles, 0o644)
//
// Warnings raised by any stage (unknown types, dangling selection sources,
// duplicate IDs) never fail the run. They are logged through the runner's
// logger and collected in [Result.Diagnostics].
package pipeline

import (
	"time"

	"github.com/matzehuels/initstate/pkg/errors"
	"github.com/matzehuels/initstate/pkg/layout"
	"github.com/matzehuels/initstate/pkg/linkgraph"
	"github.com/matzehuels/initstate/pkg/panel"
	"github.com/matzehuels/initstate/pkg/render"
	"github.com/matzehuels/initstate/pkg/render/nodelink"
	"github.com/matzehuels/initstate/pkg/report"
)

// Options contains all configuration for a pipeline run.
type Options struct {
	// Load options
	Files       []string         // Sequence files, merged in order
	Inputs      []panel.Sequence // In-memory sequences, merged after Files
	Deduplicate bool
	Registry    panel.Registry // Known panel types and their colors
	ExtraTypes  []string       // Additionally allowed type names

	// Render options
	Format     render.Format // Network format
	Detailed   bool
	InvertRows bool
	Legend     bool
	Title      string
	Refresh    bool          // Bypass the render cache
	CacheTTL   time.Duration // Zero uses cache.DefaultTTL

	// Reporter receives diagnostics in addition to the runner's logger.
	Reporter report.Reporter
}

// DefaultOptions returns options matching the CLI defaults: deduplicate,
// built-in registry, static network output with a tile legend.
func DefaultOptions() Options {
	return Options{
		Deduplicate: true,
		Registry:    panel.DefaultRegistry(),
		Format:      render.FormatStatic,
		Legend:      true,
	}
}

// Validate checks that the options describe a runnable pipeline and fills
// in defaults for zero values.
func (o *Options) Validate() error {
	if len(o.Files) == 0 && len(o.Inputs) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no input sequences")
	}
	if o.Registry.Len() == 0 {
		o.Registry = panel.DefaultRegistry()
	}
	if o.Format == "" {
		o.Format = render.FormatStatic
	}
	if _, err := render.ParseFormat(string(o.Format)); err != nil {
		return err
	}
	return nil
}

// registry returns the registry used for packing and linking, which also
// knows the extra types.
func (o *Options) registry() panel.Registry {
	if len(o.ExtraTypes) == 0 {
		return o.Registry
	}
	return o.Registry.WithTypes(o.ExtraTypes...)
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Sequence is the merged initial state.
	Sequence panel.Sequence

	// Grid is the packed tile layout.
	Grid layout.Grid

	// Graph is the selection-link graph.
	Graph *linkgraph.Graph

	// Tiles is the tile diagram as SVG.
	Tiles []byte

	// Network is the rendered link graph.
	Network *nodelink.Output

	// Diagnostics holds every warning and summary raised during the run.
	Diagnostics []report.Diagnostic

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which renders hit the cache.
	CacheInfo CacheInfo
}

// Warnings returns the warning diagnostics of the run.
func (r *Result) Warnings() []report.Diagnostic {
	var out []report.Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == report.SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Panels     int
	Rows       int
	Links      int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	NetworkHit bool
}
