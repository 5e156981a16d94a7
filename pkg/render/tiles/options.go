package tiles

// Option configures a tile rendering.
type Option func(*renderer)

type renderer struct {
	invert    bool
	legend    bool
	cellW     float64
	cellH     float64
	gap       float64
	termWidth int // characters per column unit in terminal output
}

// WithInvertRows draws the first grid row at the bottom.
func WithInvertRows() Option { return func(r *renderer) { r.invert = true } }

// WithLegend adds a key of panel types and colors.
func WithLegend() Option { return func(r *renderer) { r.legend = true } }

// WithCellSize sets the size of one grid unit in SVG pixels.
func WithCellSize(w, h float64) Option {
	return func(r *renderer) {
		if w > 0 && h > 0 {
			r.cellW, r.cellH = w, h
		}
	}
}

// WithTermUnit sets how many characters one column unit takes in terminal
// output.
func WithTermUnit(chars int) Option {
	return func(r *renderer) {
		if chars > 0 {
			r.termWidth = chars
		}
	}
}

func newRenderer(opts ...Option) renderer {
	r := renderer{cellW: 60, cellH: 80, gap: 4, termWidth: 6}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// displayRow maps a grid row to its drawing position.
func (r renderer) displayRow(row, rows int) int {
	if r.invert {
		return rows - 1 - row
	}
	return row
}
