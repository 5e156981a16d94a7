package tiles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/initstate/pkg/layout"
	"github.com/matzehuels/initstate/pkg/render"
)

var (
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Faint(true)
	legendStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderTerminal draws the grid with colored blocks for a terminal.
// Each row is one line; panel labels are truncated to fit their tile.
func RenderTerminal(g layout.Grid, opts ...Option) string {
	r := newRenderer(opts...)

	lines := make([]string, g.Rows)
	for row := 0; row < g.Rows; row++ {
		lines[r.displayRow(row, g.Rows)] = renderTermRow(r, g, row)
	}

	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}

	if r.legend {
		for _, p := range g.Legend() {
			sb.WriteString(tileStyle(p.Color).Render("  "))
			sb.WriteString(" ")
			sb.WriteString(legendStyle.Render(p.Type))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func renderTermRow(r renderer, g layout.Grid, row int) string {
	var parts []string
	col := 0
	for _, p := range g.InRow(row) {
		width := p.Width * r.termWidth
		label := truncate(" "+p.Panel, width)
		parts = append(parts, tileStyle(p.Color).Width(width).MaxWidth(width).Render(label))
		col = p.Column + p.Width
	}
	if rest := g.Columns - col; rest > 0 {
		parts = append(parts, emptyStyle.Render(strings.Repeat("·", rest*r.termWidth)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func tileStyle(color string) lipgloss.Style {
	if color == "" {
		return unknownStyle
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(render.Opaque(color))).
		Foreground(lipgloss.Color(render.TextColor(color)))
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
