// Package panel defines the data model shared by the tile packer, the link
// graph builder and the configuration merger.
//
// # Overview
//
// An initial state for the visualization application is an ordered list of
// panels. Each [Panel] has a type (the kind of plot or table), a width in a
// 12-column grid and an optional selection source naming another panel whose
// selections drive it. Panels are produced elsewhere and consumed read-only
// here; nothing in this package mutates a [Sequence] in place.
//
// # Identifiers
//
// Panels may carry an explicit ID. When the ID is empty, [Sequence.Named]
// derives one from the type and the position in the sequence, the same way
// the visualization application names panels it creates itself:
//
//	seq := panel.Sequence{
//	    {Type: "ReducedDimensionPlot", Width: 6},
//	    {Type: "ReducedDimensionPlot", Width: 6},
//	}
//	named := seq.Named() // ReducedDimensionPlot1, ReducedDimensionPlot2
//
// Duplicate identifiers are tolerated by the data model. Consumers that need
// unique identifiers report duplicates as diagnostics instead of failing.
//
// # Type Registry
//
// A [Registry] maps each known panel type to its display color. Registries
// are immutable values: [Registry.With] and [Registry.WithTypes] return new
// registries, so the default from [DefaultRegistry] can be extended per call
// without hidden global state.
package panel
