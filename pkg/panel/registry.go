package panel

import (
	"maps"
	"slices"
)

// defaultColors lists the panel kinds known out of the box with the colors
// the visualization application uses for them.
var defaultColors = map[string]string{
	// Core panels
	"ReducedDimensionPlot": "#3565AA",
	"FeatureAssayPlot":     "#7BB854",
	"SampleAssayPlot":      "#07A274",
	"ColumnDataPlot":       "#DB0230",
	"ColumnDataTable":      "#B00258",
	"RowDataPlot":          "#F2B701",
	"RowDataTable":         "#E47E04",
	"ComplexHeatmapPlot":   "#440154FF",

	// Extension panels
	"AggregatedDotPlot":           "#703737FF",
	"DynamicMarkerTable":          "#B73CE4",
	"DynamicReducedDimensionPlot": "#0F0F0F",
	"FeatureSetTable":             "#BB00FF",
	"LogFCLogFCPlot":              "#770055",
	"MAPlot":                      "#666600",
	"VolcanoPlot":                 "#DEAE10",
	"MarkdownBoard":               "black",
	"ReducedDimensionHexPlot":     "#991717",
	"GeneSetTable":                "#BB00FF",
	"ColumnTreePlot":              "#6B2BA2",
	"RowTreePlot":                 "#4B0082",
	"AbundanceDensityPlot":        "#8B0000",
	"AbundancePlot":               "#006400",
	"RDAPlot":                     "#808000",
	"LoadingPlot":                 "#4682B4",
	"PrevalencePlot":              "#CD853F",
}

// Registry maps panel types to display colors. The zero value is an empty
// registry. Registries are never modified after construction.
type Registry struct {
	colors map[string]string
}

// DefaultRegistry returns the registry of built-in panel types.
func DefaultRegistry() Registry {
	return Registry{colors: maps.Clone(defaultColors)}
}

// NewRegistry creates a registry from a type to color map. The map is copied.
func NewRegistry(colors map[string]string) Registry {
	return Registry{colors: maps.Clone(colors)}
}

// With returns a new registry holding the union of r and extra. Entries in
// extra override colors already present in r.
func (r Registry) With(extra map[string]string) Registry {
	out := make(map[string]string, len(r.colors)+len(extra))
	maps.Copy(out, r.colors)
	maps.Copy(out, extra)
	return Registry{colors: out}
}

// WithTypes returns a new registry that additionally accepts the given type
// names. Types not already present get an empty (uncolored) color.
func (r Registry) WithTypes(names ...string) Registry {
	out := make(map[string]string, len(r.colors)+len(names))
	maps.Copy(out, r.colors)
	for _, n := range names {
		if _, ok := out[n]; !ok {
			out[n] = ""
		}
	}
	return Registry{colors: out}
}

// Has reports whether the type is known.
func (r Registry) Has(panelType string) bool {
	_, ok := r.colors[panelType]
	return ok
}

// Color returns the display color of a type and whether the type is known.
// Known types may have an empty color.
func (r Registry) Color(panelType string) (string, bool) {
	c, ok := r.colors[panelType]
	return c, ok
}

// Types returns all known type names, sorted.
func (r Registry) Types() []string {
	return slices.Sorted(maps.Keys(r.colors))
}

// Len returns the number of known types.
func (r Registry) Len() int { return len(r.colors) }

// Unknown returns the panels whose type is not in the registry, in order.
func (r Registry) Unknown(seq Sequence) []Panel {
	var out []Panel
	for _, p := range seq {
		if !r.Has(p.Type) {
			out = append(out, p)
		}
	}
	return out
}
