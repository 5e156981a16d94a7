// Package pkg provides the core libraries for initstate, a toolkit for
// previewing and merging the initial panel configuration of an interactive
// data-exploration app.
//
// # Overview
//
// An initial state is an ordered list of panels. Each panel has a type, a
// width on a 12-column grid and optionally the ID of another panel whose
// selection it follows. The libraries turn such a list into two previews:
// a packed tile grid showing where panels land on screen, and a node-link
// diagram of the selection links between them.
//
// # Architecture
//
// The typical data flow:
//
//	Sequence files (JSON / YAML / TOML)
//	         ↓
//	    [io] package (decode panel lists)
//	         ↓
//	    [merge] package (concatenate, deduplicate, check types)
//	         ↓
//	    [layout] + [linkgraph] packages (tile grid, selection graph)
//	         ↓
//	    [render/tiles] + [render/nodelink] packages (SVG, HTML, terminal)
//
// [pipeline] wires these stages together behind a [pipeline.Runner] shared
// by the CLI and the preview server.
//
// # Quick Start
//
//	seq, _ := io.ImportFile("state.yaml")
//	grid, _ := layout.Pack(seq)
//	svg := tiles.RenderSVG(grid, tiles.WithLegend())
//
//	g := linkgraph.Build(seq)
//	out, _ := nodelink.Render(ctx, g, render.FormatStatic, nodelink.Options{})
//
// # Supporting Packages
//
// [panel] - Panel, Sequence and the type registry mapping panel types to
// colors.
//
// [report] - Non-fatal diagnostics (dangling sources, unknown types,
// duplicate IDs) collected or logged while the pipeline runs.
//
// [errors] - Coded errors shared by every stage.
//
// [cache] - Memory, file and Redis caches for rendered network diagrams.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// [buildinfo] - Version information injected at build time.
//
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/initstate/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/initstate/pkg/pipeline#Runner
// [panel]: https://pkg.go.dev/github.com/matzehuels/initstate/pkg/panel
// [report]: https://pkg.go.dev/github.com/matzehuels/initstate/pkg/report
// [errors]: https://pkg.go.dev/github.com/matzehuels/initstate/pkg/errors
// [cache]: https://pkg.go.dev/github.com/matzehuels/initstate/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/initstate/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/initstate/pkg/buildinfo
//
// [io]: https://pkg.go.dev/github.com/matzehuels/initstate/pkg/io
// [merge]: https://pkg.go.dev/github.com/matzehuels/initstate/pkg/merge
// [layout]: https://pkg.go.dev/github.com/matzehuels/initstate/pkg/layout
// [linkgraph]: https://pkg.go.dev/github.com/matzehuels/initstate/pkg/linkgraph
// [render/tiles]: https://pkg.go.dev/github.com/matzehuels/initstate/pkg/render/tiles
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/initstate/pkg/render/nodelink
package pkg
