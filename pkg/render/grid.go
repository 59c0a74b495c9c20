package render

import (
	"image"

	"github.com/ecbingo/ecbingo/pkg/board"
)

// Marker placement relative to a cell anchor: half a cell to the right less
// markerBiasX, and markerBiasY down, clear of the label's first line.
const (
	markerBiasX = 65
	markerBiasY = 25
)

// Label anchors sit inside their cell: the cell's top-left corner is
// labelInsetX left of and labelInsetY above the anchor.
const (
	labelInsetX = 12
	labelInsetY = 52
	footer      = 60
)

// Grid maps board points to pixel anchors on the base canvas.
type Grid struct {
	xs   [board.Width]int
	ys   [board.Height]int
	cell int
}

// NewGrid builds a grid from column offsets (B..O, left to right), row
// offsets (1..5, top to bottom) and the square cell size.
func NewGrid(xs [board.Width]int, ys [board.Height]int, cell int) Grid {
	return Grid{xs: xs, ys: ys, cell: cell}
}

// StandardGrid returns the geometry of the stock bingo board.
func StandardGrid() Grid {
	return NewGrid(
		[board.Width]int{284, 548, 813, 1078, 1342},
		[board.Height]int{327, 592, 857, 1121, 1387},
		256,
	)
}

// CellSize returns the side length of one square cell.
func (g Grid) CellSize() int { return g.cell }

// Anchor returns the label origin of p: the left edge and first baseline of
// its category text.
func (g Grid) Anchor(p board.Point) image.Point {
	return image.Pt(g.xs[p.ColumnIndex()], g.ys[p.Row()-1])
}

// MarkerOrigin returns the top-left pixel at which p's marker is drawn.
func (g Grid) MarkerOrigin(p board.Point) image.Point {
	return g.Anchor(p).Add(image.Pt(g.cell/2-markerBiasX, markerBiasY))
}

// MarkerBox returns the bounding box a marker is scaled to fit: half a cell
// in each direction.
func (g Grid) MarkerBox() image.Point {
	return image.Pt(g.cell/2, g.cell/2)
}

// Cell returns the square occupied by p on the canvas.
func (g Grid) Cell(p board.Point) image.Rectangle {
	tl := g.Anchor(p).Sub(image.Pt(labelInsetX, labelInsetY))
	return image.Rectangle{Min: tl, Max: tl.Add(image.Pt(g.cell, g.cell))}
}

// CanvasSize returns the size of a canvas that fits the grid with margins
// matching the left margin and a header band above the first row.
func (g Grid) CanvasSize() image.Point {
	margin := g.xs[0] - labelInsetX
	last := g.Cell(board.MustParsePoint("O5"))
	return image.Pt(last.Max.X+margin, last.Max.Y+footer)
}
