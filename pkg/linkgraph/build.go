package linkgraph

import (
	"maps"

	"github.com/matzehuels/initstate/pkg/errors"
	"github.com/matzehuels/initstate/pkg/panel"
	"github.com/matzehuels/initstate/pkg/report"
)

// Builder derives link graphs from panel sequences using a fixed registry.
type Builder struct {
	registry panel.Registry
	reporter report.Reporter
}

// NewBuilder creates a builder. A nil reporter discards diagnostics.
func NewBuilder(reg panel.Registry, rep report.Reporter) *Builder {
	return &Builder{registry: reg, reporter: report.OrDiscard(rep)}
}

// Build returns the selection-link graph of seq. Unnamed panels are given
// default identifiers first.
//
// Every distinct panel ID becomes one node carrying the panel's Params as
// its Meta. When an ID repeats, the first
// panel defines the node and a [errors.ErrCodeDuplicateID] warning is
// reported; the later panel's selection link is still added. Links to IDs
// not present in the sequence are dropped with a
// [errors.ErrCodeDanglingSource] warning. Self-loops are kept.
//
// Build never fails: every problem it can detect is reported and skipped.
func (b *Builder) Build(seq panel.Sequence) *Graph {
	named := seq.Named()
	g := New(Metadata{"panels": len(named)})

	for _, p := range named {
		color, known := b.registry.Color(p.Type)
		if !known {
			report.Warn(b.reporter, errors.ErrCodeUnrecognizedType, p.ID,
				"unknown panel type %q, drawing uncolored", p.Type)
		}
		err := g.AddNode(Node{
			ID:    p.ID,
			Type:  p.Type,
			Color: color,
			Width: p.Width,
			Meta:  Metadata(maps.Clone(p.Params)),
		})
		if err == ErrDuplicateNodeID {
			report.Warn(b.reporter, errors.ErrCodeDuplicateID, p.ID,
				"panel id used more than once; first %s kept as node", p.Type)
		}
	}

	for _, p := range named {
		if !p.HasSource() {
			continue
		}
		if err := g.AddEdge(Edge{From: p.SelectionSource, To: p.ID}); err != nil {
			report.Warn(b.reporter, errors.ErrCodeDanglingSource, p.ID,
				"selection source %q is not a panel in this sequence; link dropped", p.SelectionSource)
		}
	}

	return g
}

// Build is a convenience wrapper building the graph of seq with the default
// registry and no diagnostics.
func Build(seq panel.Sequence) *Graph {
	return NewBuilder(panel.DefaultRegistry(), nil).Build(seq)
}
