// Package linkgraph builds the directed graph of selection links between
// the panels of an initial state.
//
// # Overview
//
// A panel whose selection source names another panel receives that panel's
// selections. The [Builder] turns a [panel.Sequence] into a [Graph] with one
// node per panel identifier and one edge per link, pointing from the panel
// making selections to the panel receiving them:
//
//	g := linkgraph.NewBuilder(panel.DefaultRegistry(), rep).Build(seq)
//	for _, e := range g.Edges() {
//	    fmt.Printf("%s -> %s\n", e.From, e.To)
//	}
//
// A sequence without links yields the full node set and no edges.
//
// # Diagnostics
//
// Input problems never abort a build. They are reported through the
// builder's [report.Reporter]:
//
//   - a link to an identifier missing from the sequence drops the edge
//   - a repeated identifier keeps the first panel as the node
//   - an unknown panel type leaves the node uncolored
//
// Self-loops are legal configuration and are kept as edges.
//
// # Rendering
//
// Graphs are drawn by the [nodelink] renderer, either as a static Graphviz
// diagram or as an interactive network widget.
//
// [nodelink]: github.com/matzehuels/initstate/pkg/render/nodelink
package linkgraph
