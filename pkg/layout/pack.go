package layout

import (
	"github.com/matzehuels/initstate/pkg/errors"
	"github.com/matzehuels/initstate/pkg/panel"
	"github.com/matzehuels/initstate/pkg/report"
)

// Packer lays out panel sequences using a fixed type registry.
// A Packer holds no per-call state and may be reused.
type Packer struct {
	registry panel.Registry
	reporter report.Reporter
}

// NewPacker creates a packer. A nil reporter discards diagnostics.
func NewPacker(reg panel.Registry, rep report.Reporter) *Packer {
	return &Packer{registry: reg, reporter: report.OrDiscard(rep)}
}

// Pack places every panel of seq in the grid. Unnamed panels are given
// default identifiers first (see [panel.Sequence.Named]).
//
// Pack fails without a partial grid if any width is outside [1, 12].
func (p *Packer) Pack(seq panel.Sequence) (Grid, error) {
	const cols = panel.Columns

	named := seq.Named()
	for _, pn := range named {
		if err := errors.ValidateWidth(pn.Width); err != nil {
			return Grid{}, errors.New(errors.GetCode(err), "panel %q: %s", pn.ID, errors.UserMessage(err))
		}
	}

	placements := make([]Placement, 0, len(named))
	cursor, row := 0, 0
	for _, pn := range named {
		rowEnd := (row + 1) * cols
		if cursor+pn.Width > rowEnd {
			cursor = rowEnd
			row++
		}

		color, known := p.registry.Color(pn.Type)
		if !known {
			report.Warn(p.reporter, errors.ErrCodeUnrecognizedType, pn.ID,
				"unknown panel type %q, drawing uncolored", pn.Type)
		}

		placements = append(placements, Placement{
			Panel:  pn.ID,
			Type:   pn.Type,
			Color:  color,
			Row:    row,
			Column: cursor - row*cols,
			Width:  pn.Width,
		})
		cursor += pn.Width
	}

	rows := (cursor + cols - 1) / cols
	grid := Grid{
		Columns:    cols,
		Rows:       rows,
		Cells:      make([]Cell, rows*cols),
		Placements: placements,
	}
	for _, pl := range placements {
		for i := pl.Start(cols); i < pl.End(cols); i++ {
			grid.Cells[i] = Cell{Panel: pl.Panel, Type: pl.Type, Color: pl.Color}
		}
	}

	return grid, nil
}

// Pack is a convenience wrapper packing seq with the default registry and
// no diagnostics.
func Pack(seq panel.Sequence) (Grid, error) {
	return NewPacker(panel.DefaultRegistry(), nil).Pack(seq)
}
