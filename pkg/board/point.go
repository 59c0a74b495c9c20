package board

import (
	"strings"

	"github.com/ecbingo/ecbingo/pkg/errors"
)

// Grid dimensions.
const (
	Width  = 5
	Height = 5
)

// Columns holds the column labels from left to right.
const Columns = "BINGO"

// Point addresses one cell of the grid. The zero value is B1.
type Point struct {
	col, row int // zero-based
}

// FreeSpace is the permanently marked center cell, N3.
var FreeSpace = Point{col: 2, row: 2}

// NewPoint builds a point from a column label and a 1-based row.
func NewPoint(col byte, row int) (Point, error) {
	c := strings.IndexByte(Columns, col)
	if c < 0 || row < 1 || row > Height {
		return Point{}, errors.New(errors.ErrCodeInvalidPoint, "invalid point %c%d", col, row)
	}
	return Point{col: c, row: row - 1}, nil
}

// ParsePoint parses a two-character label such as "G3".
// Column letters are case-sensitive.
func ParsePoint(s string) (Point, error) {
	if len(s) != 2 || s[1] < '1' || s[1] > '9' {
		return Point{}, errors.New(errors.ErrCodeInvalidPoint, "invalid point %q", s)
	}
	p, err := NewPoint(s[0], int(s[1]-'0'))
	if err != nil {
		return Point{}, errors.New(errors.ErrCodeInvalidPoint, "invalid point %q", s)
	}
	return p, nil
}

// ParseMutable parses a label naming a cell that can be marked or unmarked.
// The free space fails with IMMUTABLE_FREE_SPACE so callers can reject it
// before doing any work for the mutation.
func ParseMutable(s string) (Point, error) {
	p, err := ParsePoint(s)
	if err != nil {
		return Point{}, err
	}
	if p.IsFree() {
		return Point{}, errors.New(errors.ErrCodeFreeSpace, "point may not be %q", s)
	}
	return p, nil
}

// MustParsePoint is like ParsePoint but panics on invalid input.
func MustParsePoint(s string) Point {
	p, err := ParsePoint(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Column returns the column label, one of B, I, N, G, O.
func (p Point) Column() byte { return Columns[p.col] }

// ColumnIndex returns the zero-based column index.
func (p Point) ColumnIndex() int { return p.col }

// Row returns the 1-based row number.
func (p Point) Row() int { return p.row + 1 }

// IsFree reports whether p is the free space.
func (p Point) IsFree() bool { return p == FreeSpace }

// String returns the label form, e.g. "B4".
func (p Point) String() string {
	return string([]byte{p.Column(), byte('1' + p.row)})
}

// index returns the position of p in the category list: column-major order
// with the free space skipped. It must not be called on the free space.
func (p Point) index() int {
	i := p.col*Height + p.row
	if i > FreeSpace.col*Height+FreeSpace.row {
		i--
	}
	return i
}

// Points returns every non-free point in category order: B1..B5, I1..I5,
// N1, N2, N4, N5, G1..G5, O1..O5.
func Points() []Point {
	pts := make([]Point, 0, CategoryCount)
	for c := range Width {
		for r := range Height {
			if p := (Point{col: c, row: r}); !p.IsFree() {
				pts = append(pts, p)
			}
		}
	}
	return pts
}
