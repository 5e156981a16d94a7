// Package layout packs a panel sequence into the 12-column tile grid used
// for compact previews of an initial state.
//
// # Algorithm
//
// The canvas is an unbounded stack of rows, each exactly [panel.Columns]
// cells wide. Panels are walked in sequence order with a cursor holding the
// absolute cell offset. A panel that fits in the remainder of the current row
// is placed at the cursor; otherwise the cursor jumps to the start of the
// next row and the panel is placed there. Panels are never split across rows
// and skipped cells are never backfilled by later, narrower panels, so the
// preview matches how the application lays panels out left to right.
//
// The grid has ceil(cursor/12) rows once all panels are placed; cells
// skipped at row ends and trailing cells of the last row are empty.
//
//	p := layout.NewPacker(panel.DefaultRegistry(), nil)
//	grid, err := p.Pack(seq)
//
// # Errors
//
// Widths below one or above twelve abort packing with an
// [errors.ErrCodeInvalidInput] or [errors.ErrCodeOversizedPanel] error.
// Unknown panel types do not: their cells are left uncolored and an
// [errors.ErrCodeUnrecognizedType] warning is reported.
//
// Row 0 of a [Grid] holds the first panel. Renderers may draw rows bottom to
// top; that is a display choice and does not change the grid.
//
// [errors.ErrCodeInvalidInput]: github.com/matzehuels/initstate/pkg/errors.ErrCodeInvalidInput
// [errors.ErrCodeOversizedPanel]: github.com/matzehuels/initstate/pkg/errors.ErrCodeOversizedPanel
// [errors.ErrCodeUnrecognizedType]: github.com/matzehuels/initstate/pkg/errors.ErrCodeUnrecognizedType
package layout
