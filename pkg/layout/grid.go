package layout

// Cell is one unit of the grid. The zero value is an empty cell.
type Cell struct {
	Panel string `json:"panel,omitempty"` // Panel ID occupying the cell
	Type  string `json:"type,omitempty"`  // Panel type
	Color string `json:"color,omitempty"` // Registry color; empty for unknown types
}

// Empty reports whether no panel occupies the cell.
func (c Cell) Empty() bool { return c.Panel == "" && c.Type == "" }

// Placement records where one panel landed.
type Placement struct {
	Panel  string `json:"panel"`
	Type   string `json:"type"`
	Color  string `json:"color,omitempty"`
	Row    int    `json:"row"`    // 0-based row index
	Column int    `json:"column"` // 0-based first column within the row
	Width  int    `json:"width"`
}

// Start returns the absolute offset of the first cell of the placement.
func (p Placement) Start(columns int) int { return p.Row*columns + p.Column }

// End returns the absolute offset one past the last cell of the placement.
func (p Placement) End(columns int) int { return p.Start(columns) + p.Width }

// Grid is the packed tile layout.
type Grid struct {
	Columns    int         `json:"columns"`
	Rows       int         `json:"rows"`
	Cells      []Cell      `json:"cells"`      // Rows*Columns cells, row-major
	Placements []Placement `json:"placements"` // One per panel, in sequence order
}

// Row returns the cells of row i. It panics if i is out of range.
func (g Grid) Row(i int) []Cell {
	return g.Cells[i*g.Columns : (i+1)*g.Columns]
}

// At returns the cell at the given row and column.
func (g Grid) At(row, col int) Cell {
	return g.Cells[row*g.Columns+col]
}

// Occupied returns the number of non-empty cells.
func (g Grid) Occupied() int {
	n := 0
	for _, c := range g.Cells {
		if !c.Empty() {
			n++
		}
	}
	return n
}

// RowWidth returns the summed width of the panels placed in row i.
func (g Grid) RowWidth(i int) int {
	w := 0
	for _, p := range g.Placements {
		if p.Row == i {
			w += p.Width
		}
	}
	return w
}

// InRow returns the placements in row i, left to right.
func (g Grid) InRow(i int) []Placement {
	var out []Placement
	for _, p := range g.Placements {
		if p.Row == i {
			out = append(out, p)
		}
	}
	return out
}

// Legend returns the first placement of each distinct panel type, in
// placement order. Renderers use it to draw a type/color key.
func (g Grid) Legend() []Placement {
	seen := make(map[string]bool)
	var out []Placement
	for _, p := range g.Placements {
		if seen[p.Type] {
			continue
		}
		seen[p.Type] = true
		out = append(out, p)
	}
	return out
}
