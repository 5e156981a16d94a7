package tiles

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/initstate/pkg/layout"
	"github.com/matzehuels/initstate/pkg/render"
)

const tileCSS = `
    .tile { stroke: #333; stroke-width: 1; transition: stroke-width 0.2s ease; }
    .tile:hover { stroke-width: 3; }
    .tile.unknown { fill: white; stroke-dasharray: 6 4; }
    .tile-text { font-family: sans-serif; font-size: 12px; text-anchor: middle; dominant-baseline: middle; pointer-events: none; }
    .legend-text { font-family: sans-serif; font-size: 12px; dominant-baseline: middle; }`

const legendRowHeight = 20

// RenderSVG draws the grid as a standalone SVG document.
func RenderSVG(g layout.Grid, opts ...Option) []byte {
	r := newRenderer(opts...)

	width := float64(g.Columns)*r.cellW + r.gap
	gridHeight := float64(g.Rows)*r.cellH + r.gap
	height := gridHeight
	legend := g.Legend()
	if r.legend && len(legend) > 0 {
		height += float64(len(legend)*legendRowHeight) + r.gap*2
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", tileCSS)

	for _, p := range g.Placements {
		renderTile(&buf, r, g.Rows, p)
	}
	if r.legend {
		renderLegend(&buf, r, gridHeight+r.gap, legend)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderTile(buf *bytes.Buffer, r renderer, rows int, p layout.Placement) {
	x := float64(p.Column)*r.cellW + r.gap
	y := float64(r.displayRow(p.Row, rows))*r.cellH + r.gap
	w := float64(p.Width)*r.cellW - r.gap
	h := r.cellH - r.gap

	id := html.EscapeString(p.Panel)
	if p.Color == "" {
		fmt.Fprintf(buf, `  <rect id="tile-%s" class="tile unknown" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4">`,
			id, x, y, w, h)
	} else {
		fmt.Fprintf(buf, `  <rect id="tile-%s" class="tile" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s">`,
			id, x, y, w, h, html.EscapeString(p.Color))
	}
	fmt.Fprintf(buf, "<title>%s (%s, width %d)</title></rect>\n", id, html.EscapeString(p.Type), p.Width)

	fmt.Fprintf(buf, `  <text class="tile-text" x="%.1f" y="%.1f" fill="%s">%s</text>`+"\n",
		x+w/2, y+h/2, render.TextColor(p.Color), id)
}

func renderLegend(buf *bytes.Buffer, r renderer, top float64, legend []layout.Placement) {
	for i, p := range legend {
		y := top + float64(i*legendRowHeight)
		fill := p.Color
		if fill == "" {
			fill = "white"
		}
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="14" height="14" fill="%s" stroke="#333"/>`+"\n",
			r.gap, y, html.EscapeString(fill))
		fmt.Fprintf(buf, `  <text class="legend-text" x="%.1f" y="%.1f">%s</text>`+"\n",
			r.gap+20, y+7, html.EscapeString(p.Type))
	}
}
