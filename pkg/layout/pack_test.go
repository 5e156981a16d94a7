package layout

import (
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/initstate/pkg/errors"
	"github.com/matzehuels/initstate/pkg/panel"
	"github.com/matzehuels/initstate/pkg/report"
)

func TestPack_Scenario(t *testing.T) {
	seq := panel.Sequence{
		{ID: "p1", Type: "ReducedDimensionPlot", Width: 6, SelectionSource: panel.NoSource},
		{ID: "p2", Type: "FeatureAssayPlot", Width: 8, SelectionSource: "p1"},
	}

	g, err := Pack(seq)
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}

	if g.Rows != 2 || len(g.Cells) != 24 {
		t.Fatalf("Pack() rows=%d cells=%d, want 2 rows and 24 cells", g.Rows, len(g.Cells))
	}

	for i := 0; i < 6; i++ {
		if g.Cells[i].Panel != "p1" || g.Cells[i].Color != "#3565AA" {
			t.Errorf("cell %d = %+v, want p1", i, g.Cells[i])
		}
	}
	for i := 6; i < 12; i++ {
		if !g.Cells[i].Empty() {
			t.Errorf("cell %d = %+v, want empty", i, g.Cells[i])
		}
	}
	for i := 12; i < 20; i++ {
		if g.Cells[i].Panel != "p2" || g.Cells[i].Type != "FeatureAssayPlot" {
			t.Errorf("cell %d = %+v, want p2", i, g.Cells[i])
		}
	}
	for i := 20; i < 24; i++ {
		if !g.Cells[i].Empty() {
			t.Errorf("cell %d = %+v, want empty", i, g.Cells[i])
		}
	}

	want := []Placement{
		{Panel: "p1", Type: "ReducedDimensionPlot", Color: "#3565AA", Row: 0, Column: 0, Width: 6},
		{Panel: "p2", Type: "FeatureAssayPlot", Color: "#7BB854", Row: 1, Column: 0, Width: 8},
	}
	for i, p := range g.Placements {
		if p != want[i] {
			t.Errorf("placement %d = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestPack_Empty(t *testing.T) {
	g, err := Pack(nil)
	if err != nil {
		t.Fatalf("Pack(nil) error: %v", err)
	}
	if g.Rows != 0 || len(g.Cells) != 0 || len(g.Placements) != 0 {
		t.Errorf("Pack(nil) = %+v, want zero-row grid", g)
	}
	if g.Columns != 12 {
		t.Errorf("Columns = %d, want 12", g.Columns)
	}
}

func TestPack_Rows(t *testing.T) {
	tests := []struct {
		name     string
		widths   []int
		wantRows int
		wantCols []int // first column of each placement
		wantRow  []int
	}{
		{"single full row", []int{12}, 1, []int{0}, []int{0}},
		{"three thirds", []int{4, 4, 4}, 1, []int{0, 4, 8}, []int{0, 0, 0}},
		{"exact fill then wrap", []int{6, 6, 1}, 2, []int{0, 6, 0}, []int{0, 0, 1}},
		{"no backfill", []int{8, 6, 4}, 2, []int{0, 0, 6}, []int{0, 1, 1}},
		{"narrow after wide wrap", []int{11, 2, 1}, 2, []int{0, 0, 2}, []int{0, 1, 1}},
		{"trailing partial row", []int{12, 3}, 2, []int{0, 0}, []int{0, 1}},
		{"ones", []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, 2, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := make(panel.Sequence, len(tt.widths))
			for i, w := range tt.widths {
				seq[i] = panel.Panel{Type: "RowDataTable", Width: w}
			}
			g, err := Pack(seq)
			if err != nil {
				t.Fatalf("Pack() error: %v", err)
			}
			if g.Rows != tt.wantRows {
				t.Errorf("Rows = %d, want %d", g.Rows, tt.wantRows)
			}
			for i, p := range g.Placements {
				if tt.wantCols != nil && p.Column != tt.wantCols[i] {
					t.Errorf("placement %d column = %d, want %d", i, p.Column, tt.wantCols[i])
				}
				if tt.wantRow != nil && p.Row != tt.wantRow[i] {
					t.Errorf("placement %d row = %d, want %d", i, p.Row, tt.wantRow[i])
				}
			}
		})
	}
}

func TestPack_DefaultNames(t *testing.T) {
	seq := panel.Sequence{
		{Type: "ReducedDimensionPlot", Width: 6},
		{Type: "ReducedDimensionPlot", Width: 6},
	}
	g, err := Pack(seq)
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}
	if g.Placements[0].Panel != "ReducedDimensionPlot1" || g.Placements[1].Panel != "ReducedDimensionPlot2" {
		t.Errorf("default names = %q, %q", g.Placements[0].Panel, g.Placements[1].Panel)
	}
}

func TestPack_WidthErrors(t *testing.T) {
	tests := []struct {
		name  string
		width int
		code  errors.Code
	}{
		{"oversized", 13, errors.ErrCodeOversizedPanel},
		{"way oversized", 40, errors.ErrCodeOversizedPanel},
		{"zero", 0, errors.ErrCodeInvalidInput},
		{"negative", -1, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := panel.Sequence{
				{ID: "ok", Type: "RowDataTable", Width: 4},
				{ID: "bad", Type: "RowDataTable", Width: tt.width},
			}
			g, err := Pack(seq)
			if !errors.Is(err, tt.code) {
				t.Fatalf("Pack() error = %v, want code %s", err, tt.code)
			}
			if g.Rows != 0 || g.Cells != nil {
				t.Errorf("Pack() returned a partial grid on error: %+v", g)
			}
		})
	}
}

func TestPack_UnknownType(t *testing.T) {
	var rep report.Collector
	p := NewPacker(panel.DefaultRegistry(), &rep)

	g, err := p.Pack(panel.Sequence{
		{ID: "x", Type: "NotARealPanel", Width: 3},
		{ID: "y", Type: "RowDataTable", Width: 3},
	})
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}

	if g.At(0, 0).Color != "" || g.At(0, 0).Type != "NotARealPanel" {
		t.Errorf("unknown type cell = %+v, want uncolored typed cell", g.At(0, 0))
	}
	if g.At(0, 3).Color != "#E47E04" {
		t.Errorf("known type cell = %+v", g.At(0, 3))
	}

	warns := rep.WithCode(errors.ErrCodeUnrecognizedType)
	if len(warns) != 1 || warns[0].Panel != "x" {
		t.Errorf("warnings = %+v, want one for panel x", warns)
	}
}

func TestPack_CustomRegistry(t *testing.T) {
	reg := panel.DefaultRegistry().With(map[string]string{"MyPlot": "#000000"})
	g, err := NewPacker(reg, nil).Pack(panel.Sequence{{Type: "MyPlot", Width: 2}})
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}
	if g.At(0, 1).Color != "#000000" {
		t.Errorf("custom color = %q", g.At(0, 1).Color)
	}
}

// TestPack_Invariants checks the capacity and contiguity properties over
// random sequences.
func TestPack_Invariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for iter := 0; iter < 200; iter++ {
		n := rng.IntN(20)
		seq := make(panel.Sequence, n)
		for i := range seq {
			seq[i] = panel.Panel{Type: "ColumnDataPlot", Width: 1 + rng.IntN(12)}
		}

		g, err := Pack(seq)
		if err != nil {
			t.Fatalf("Pack() error: %v", err)
		}

		if len(g.Placements) != n {
			t.Fatalf("placements = %d, want %d", len(g.Placements), n)
		}
		if len(g.Cells) != g.Rows*g.Columns {
			t.Fatalf("cells = %d, want %d", len(g.Cells), g.Rows*g.Columns)
		}

		// Rows equals ceil(span/12) where span ends at the last placement.
		span := 0
		if n > 0 {
			span = g.Placements[n-1].End(g.Columns)
		}
		if want := (span + 11) / 12; g.Rows != want {
			t.Fatalf("Rows = %d, want ceil(%d/12) = %d", g.Rows, span, want)
		}

		for r := 0; r < g.Rows; r++ {
			if w := g.RowWidth(r); w > 12 {
				t.Fatalf("row %d holds width %d", r, w)
			}
		}

		occupied := 0
		for i, p := range g.Placements {
			if p.Column+p.Width > g.Columns {
				t.Fatalf("placement %d crosses a row boundary: %+v", i, p)
			}
			for c := p.Start(g.Columns); c < p.End(g.Columns); c++ {
				if g.Cells[c].Panel != p.Panel {
					t.Fatalf("cell %d = %q, want %q", c, g.Cells[c].Panel, p.Panel)
				}
			}
			if i > 0 && p.Start(g.Columns) < g.Placements[i-1].End(g.Columns) {
				t.Fatalf("placement %d overlaps or precedes its predecessor", i)
			}
			occupied += p.Width
		}
		if g.Occupied() != occupied {
			t.Fatalf("Occupied() = %d, want %d", g.Occupied(), occupied)
		}
	}
}

func TestGridHelpers(t *testing.T) {
	g, err := Pack(panel.Sequence{
		{ID: "a", Type: "ReducedDimensionPlot", Width: 4},
		{ID: "b", Type: "ReducedDimensionPlot", Width: 4},
		{ID: "c", Type: "RowDataTable", Width: 6},
	})
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}

	if got := len(g.Row(1)); got != 12 {
		t.Errorf("len(Row(1)) = %d", got)
	}
	if got := g.InRow(0); len(got) != 2 || got[1].Panel != "b" {
		t.Errorf("InRow(0) = %+v", got)
	}
	legend := g.Legend()
	if len(legend) != 2 || legend[0].Type != "ReducedDimensionPlot" || legend[1].Type != "RowDataTable" {
		t.Errorf("Legend() = %+v", legend)
	}
}
