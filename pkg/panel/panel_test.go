package panel

import (
	"slices"
	"testing"
)

func TestHasSource(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"", false},
		{NoSource, false},
		{"ReducedDimensionPlot1", true},
	}
	for _, tt := range tests {
		p := Panel{SelectionSource: tt.source}
		if got := p.HasSource(); got != tt.want {
			t.Errorf("HasSource(%q) = %v, want %v", tt.source, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	base := Panel{
		ID:              "p1",
		Type:            "ReducedDimensionPlot",
		Width:           6,
		SelectionSource: NoSource,
		Params:          map[string]any{"Type": "UMAP", "Dims": []int{1, 2}},
	}

	tests := []struct {
		name   string
		mutate func(p *Panel)
		want   bool
	}{
		{"identical", func(p *Panel) {}, true},
		{"empty source equals sentinel", func(p *Panel) { p.SelectionSource = "" }, true},
		{"different id", func(p *Panel) { p.ID = "p2" }, false},
		{"different type", func(p *Panel) { p.Type = "FeatureAssayPlot" }, false},
		{"different width", func(p *Panel) { p.Width = 4 }, false},
		{"different source", func(p *Panel) { p.SelectionSource = "p0" }, false},
		{"different param", func(p *Panel) { p.Params = map[string]any{"Type": "TSNE", "Dims": []int{1, 2}} }, false},
		{"nested param", func(p *Panel) { p.Params = map[string]any{"Type": "UMAP", "Dims": []int{1, 3}} }, false},
		{"missing params", func(p *Panel) { p.Params = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base
			other.Params = map[string]any{"Type": "UMAP", "Dims": []int{1, 2}}
			tt.mutate(&other)
			if got := Equal(base, other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := Equal(other, base); got != tt.want {
				t.Errorf("Equal() not symmetric: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualNilAndEmptyParams(t *testing.T) {
	a := Panel{Type: "RowDataTable", Width: 4}
	b := Panel{Type: "RowDataTable", Width: 4, Params: map[string]any{}}
	if !Equal(a, b) {
		t.Error("nil and empty Params should compare equal")
	}
}

func TestNamed(t *testing.T) {
	seq := Sequence{
		{Type: "ReducedDimensionPlot"},
		{ID: "ReducedDimensionPlot2", Type: "ColumnDataPlot"},
		{Type: "ReducedDimensionPlot"},
		{Type: "FeatureAssayPlot"},
		{ID: "custom", Type: "FeatureAssayPlot"},
		{Type: "ReducedDimensionPlot"},
	}

	got := seq.Named().IDs()
	want := []string{
		"ReducedDimensionPlot1",
		"ReducedDimensionPlot2",
		"ReducedDimensionPlot3",
		"FeatureAssayPlot1",
		"custom",
		"ReducedDimensionPlot4",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Named() = %v, want %v", got, want)
	}

	if seq[0].ID != "" {
		t.Error("Named() must not modify the receiver")
	}
}

func TestNamedEmpty(t *testing.T) {
	if got := Sequence(nil).Named(); len(got) != 0 {
		t.Errorf("Named() on nil = %v, want empty", got)
	}
}

func TestClone(t *testing.T) {
	seq := Sequence{{ID: "a", Type: "RowDataTable", Width: 4, Params: map[string]any{"k": 1}}}
	c := seq.Clone()
	c[0].ID = "b"
	c[0].Params["k"] = 2

	if seq[0].ID != "a" {
		t.Error("Clone() shares panel storage")
	}
	if seq[0].Params["k"] != 1 {
		t.Error("Clone() shares Params maps")
	}
}

func TestDuplicateIDs(t *testing.T) {
	seq := Sequence{
		{ID: "a"}, {ID: "b"}, {ID: "a"}, {ID: ""}, {ID: ""}, {ID: "b"}, {ID: "a"},
	}
	got := seq.DuplicateIDs()
	want := []string{"a", "b"}
	if !slices.Equal(got, want) {
		t.Errorf("DuplicateIDs() = %v, want %v", got, want)
	}
}

func TestIndexAndTotalWidth(t *testing.T) {
	seq := Sequence{{ID: "a", Width: 6}, {ID: "b", Width: 8}, {ID: "a", Width: 1}}
	if got := seq.Index("a"); got != 0 {
		t.Errorf("Index(a) = %d, want 0", got)
	}
	if got := seq.Index("missing"); got != -1 {
		t.Errorf("Index(missing) = %d, want -1", got)
	}
	if got := seq.TotalWidth(); got != 15 {
		t.Errorf("TotalWidth() = %d, want 15", got)
	}
}

func TestLabel(t *testing.T) {
	if got := (Panel{ID: "x", Type: "T"}).Label(); got != "x" {
		t.Errorf("Label() = %q, want x", got)
	}
	if got := (Panel{Type: "T"}).Label(); got != "T" {
		t.Errorf("Label() = %q, want T", got)
	}
}
