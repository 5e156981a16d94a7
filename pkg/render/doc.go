// Package render holds what the renderers share.
//
// # Overview
//
// Two views are drawn from a panel sequence:
//
//   - Tiles (in the [tiles] subpackage): the packed 12-column grid, one
//     colored rectangle per panel, as SVG or in the terminal
//   - Node-link diagrams (in the [nodelink] subpackage): the selection-link
//     graph, with panels as boxes and links as arrows
//
// # Formats
//
// The link graph can be requested in three output formats, see [Format]:
//
//	out, err := nodelink.Render(ctx, g, render.FormatStatic, nodelink.Options{})
//
// [FormatStatic] draws an SVG with Graphviz, [FormatInteractive] writes an
// HTML page with a draggable network widget and [FormatNone] skips drawing
// and only returns the graph.
//
// [tiles]: github.com/matzehuels/initstate/pkg/render/tiles
// [nodelink]: github.com/matzehuels/initstate/pkg/render/nodelink
package render
