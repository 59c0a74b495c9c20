// Package board models an Emote Collector bingo board.
//
// A [Board] holds the 24 categories printed on the card, the 5x5 mark grid
// and the marker image attached to every marked cell. The center cell N3 is
// the free space: always marked, never carrying a category or a marker.
//
// Boards are values. [Board.SetMark], [Board.Mark] and [Board.Unmark] return a
// modified copy and leave the receiver untouched. The only way to obtain a
// Board is [Create] or [Decode], so every Board in circulation satisfies the
// invariant that a non-free cell is marked exactly when it has a marker. The
// zero Board has empty categories and no marks but is otherwise usable.
package board

import (
	"bytes"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/ecbingo/ecbingo/pkg/errors"
)

// CategoryCount is the number of categories on a board, one per non-free cell.
const CategoryCount = Width*Height - 1

// Board is a bingo card.
type Board struct {
	categories [CategoryCount]string
	marks      [Width][Height]bool
	markers    map[Point][]byte
}

// Create draws a fresh board: the pool is shuffled with rng and the first
// 24 entries become the categories. The pool itself is not modified.
func Create(pool []string, rng *rand.Rand) (*Board, error) {
	if len(pool) < CategoryCount {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"category pool has %d entries, need at least %d", len(pool), CategoryCount)
	}
	shuffled := slices.Clone(pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	b := empty()
	copy(b.categories[:], shuffled)
	return b, nil
}

// NewRand returns a PCG source seeded with seed, for reproducible boards.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

func empty() *Board {
	b := &Board{markers: make(map[Point][]byte)}
	b.marks[FreeSpace.col][FreeSpace.row] = true
	return b
}

// Categories returns the 24 categories in column-major order with the free
// space skipped; see [Points].
func (b *Board) Categories() []string {
	return slices.Clone(b.categories[:])
}

// Category returns the category printed at p. The free space has none.
func (b *Board) Category(p Point) (string, bool) {
	if p.IsFree() {
		return "", false
	}
	return b.categories[p.index()], true
}

// Marked reports whether p is marked. The free space always is.
func (b *Board) Marked(p Point) bool {
	return p.IsFree() || b.marks[p.col][p.row]
}

// Marks returns a copy of the mark grid indexed by [column][row], both zero-based.
func (b *Board) Marks() [Width][Height]bool {
	marks := b.marks
	marks[FreeSpace.col][FreeSpace.row] = true
	return marks
}

// Marker returns the image blob attached to p, if any.
func (b *Board) Marker(p Point) ([]byte, bool) {
	blob, ok := b.markers[p]
	return blob, ok
}

// Markers returns the marked points in category order.
func (b *Board) Markers() []Point {
	var pts []Point
	for _, p := range Points() {
		if _, ok := b.markers[p]; ok {
			pts = append(pts, p)
		}
	}
	return pts
}

// SetMark returns a copy of b with p marked (attaching blob) or unmarked
// (dropping its blob). Marking an already marked cell replaces its blob.
//
// It fails with INVALID_INPUT when marking without a blob, with
// IMMUTABLE_FREE_SPACE for the free space and with NOT_MARKED when
// unmarking a cell that has no mark.
func (b *Board) SetMark(p Point, marked bool, blob []byte) (*Board, error) {
	if p.col < 0 || p.col >= Width || p.row < 0 || p.row >= Height {
		return nil, errors.New(errors.ErrCodeInvalidPoint, "invalid point")
	}
	if p.IsFree() {
		return nil, errors.New(errors.ErrCodeFreeSpace, "point %s is the free space", p)
	}

	next := b.clone()
	if marked {
		if len(blob) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "marking %s requires a marker image", p)
		}
		next.marks[p.col][p.row] = true
		next.markers[p] = slices.Clone(blob)
		return next, nil
	}

	if _, ok := next.markers[p]; !ok {
		return nil, errors.New(errors.ErrCodeNotMarked, "point %s is not marked", p)
	}
	next.marks[p.col][p.row] = false
	delete(next.markers, p)
	return next, nil
}

// Mark is shorthand for SetMark(p, true, blob).
func (b *Board) Mark(p Point, blob []byte) (*Board, error) {
	return b.SetMark(p, true, blob)
}

// Unmark is shorthand for SetMark(p, false, nil).
func (b *Board) Unmark(p Point) (*Board, error) {
	return b.SetMark(p, false, nil)
}

// Equal reports whether two boards have the same categories, marks and markers.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.categories == o.categories &&
		b.marks == o.marks &&
		maps.EqualFunc(b.markers, o.markers, bytes.Equal)
}

func (b *Board) clone() *Board {
	next := &Board{
		categories: b.categories,
		marks:      b.marks,
		markers:    maps.Clone(b.markers),
	}
	if next.markers == nil {
		next.markers = make(map[Point][]byte)
	}
	next.marks[FreeSpace.col][FreeSpace.row] = true
	return next
}

// validate checks the mark/marker invariant; boards built by Create and
// SetMark satisfy it by construction, decoded ones are checked here.
func (b *Board) validate() error {
	if !b.marks[FreeSpace.col][FreeSpace.row] {
		return errors.New(errors.ErrCodeCorruptRecord, "free space is not marked")
	}
	if _, ok := b.markers[FreeSpace]; ok {
		return errors.New(errors.ErrCodeCorruptRecord, "free space carries a marker")
	}
	for _, p := range Points() {
		_, has := b.markers[p]
		if has != b.marks[p.col][p.row] {
			return errors.New(errors.ErrCodeCorruptRecord, "mark and marker disagree at %s", p)
		}
		if has && len(b.markers[p]) == 0 {
			return errors.New(errors.ErrCodeCorruptRecord, "empty marker at %s", p)
		}
	}
	return nil
}
