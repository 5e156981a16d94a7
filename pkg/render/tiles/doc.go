// Package tiles draws packed layout grids.
//
// Each placement becomes one rectangle spanning its columns, filled with the
// color of its panel type. Panels of unknown type are drawn unfilled with a
// dashed outline. Empty cells stay blank.
//
//	grid, _ := layout.Pack(seq)
//	svg := tiles.RenderSVG(grid, tiles.WithLegend())
//	fmt.Print(tiles.RenderTerminal(grid))
//
// Rows are drawn top to bottom in grid order. [WithInvertRows] flips that,
// putting the first row at the bottom as plotting tools that count rows
// upward do.
package tiles
