// Package nodelink draws selection-link graphs as node-link diagrams.
//
// # Overview
//
// Panels appear as boxes filled with their type's color and selection links
// as arrows from the panel making the selection to the panel receiving it.
// Self-links show as loops.
//
// # Usage
//
// [Render] dispatches on a [render.Format]:
//
//	out, err := nodelink.Render(ctx, g, render.FormatStatic, nodelink.Options{})
//	os.WriteFile("links.svg", out.Data, 0o644)
//
// The lower level pieces are exported too. Convert the graph to DOT, then
// render to SVG or PNG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// [RenderHTML] produces the interactive page.
//
// # Options
//
//   - Detailed: node labels include type, width and metadata
//   - Title: page title for interactive output
//   - Cache, Keyer: reuse SVGs rendered earlier from identical DOT source
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering. The interactive page loads vis-network from a CDN when
// opened.
package nodelink
