package gridrect

import (
	"fmt"
	"image"
)

// Grid is a read-only W×H occupancy field. It is the only view the scanner and
// flood filler have of the input, so any realization that answers these three
// methods consistently yields the same decomposition.
//
// Occupied is only ever called with 0 ≤ x < Width() and 0 ≤ y < Height(), and
// must return the same answer for the same cell for the duration of one call.
type Grid interface {
	Width() int
	Height() int
	Occupied(x, y int) bool
}

// Func reports whether cell (x,y) is occupied.
type Func func(x, y int) bool

// InBounds reports whether (x,y) lies within g.
// Complexity: O(1).
func InBounds(g Grid, x, y int) bool {
	return x >= 0 && x < g.Width() && y >= 0 && y < g.Height()
}

// Dense is a materialized occupancy grid stored row-major, one bool per cell.
// It is immutable once built.
type Dense struct {
	width, height int
	cells         []bool
}

// NewDense builds a Dense grid from rows of ints: zero is empty, any nonzero
// value is occupied. Zero rows yield a valid 0×0 grid.
// Returns ErrNonRectangular if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func NewDense(values [][]int) (*Dense, error) {
	return FromRows(values)
}

// FromRows builds a Dense grid from rows of any comparable cell type. The zero
// value of T is empty; every other value is occupied. The input is copied, so
// later changes to rows do not affect the grid.
func FromRows[T comparable](rows [][]T) (*Dense, error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	var zero T
	cells := make([]bool, w*h)
	for y, row := range rows {
		base := y * w
		for x, v := range row {
			cells[base+x] = v != zero
		}
	}

	return &Dense{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (d *Dense) Width() int { return d.width }

// Height returns the number of rows.
func (d *Dense) Height() int { return d.height }

// Occupied reports whether cell (x,y) is filled. Out-of-range cells are empty.
// Complexity: O(1).
func (d *Dense) Occupied(x, y int) bool {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return false
	}
	return d.cells[d.index(x, y)]
}

// Count returns the number of occupied cells.
func (d *Dense) Count() int {
	n := 0
	for _, c := range d.cells {
		if c {
			n++
		}
	}
	return n
}

// index maps (x,y) to a row-major index: y*width + x.
func (d *Dense) index(x, y int) int {
	return y*d.width + x
}

// Lazy is an occupancy grid backed by a predicate and explicit dimensions.
// Nothing is materialized; each Occupied call invokes the predicate.
type Lazy struct {
	width, height int
	fn            Func
}

// NewLazy wraps fn as a width×height grid.
// Returns ErrNilPredicate if fn is nil and ErrNegativeDimension if either
// dimension is negative.
//
// fn must be total over [0,width)×[0,height) and must not observe data that
// changes while a decomposition is running.
func NewLazy(fn Func, width, height int) (*Lazy, error) {
	if fn == nil {
		return nil, ErrNilPredicate
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrNegativeDimension, width, height)
	}
	return &Lazy{width: width, height: height, fn: fn}, nil
}

// Width returns the number of columns.
func (l *Lazy) Width() int { return l.width }

// Height returns the number of rows.
func (l *Lazy) Height() int { return l.height }

// Occupied invokes the predicate for in-range cells; out-of-range cells are
// empty and never reach the predicate.
func (l *Lazy) Occupied(x, y int) bool {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return false
	}
	return l.fn(x, y)
}

// FromImage returns a Lazy grid over img where a pixel is occupied when its
// 16-bit alpha is at least threshold. A threshold of 0 is treated as 1, so the
// default selects every pixel that is not fully transparent.
// The image's Min point maps to cell (0,0).
func FromImage(img image.Image, threshold uint16) (*Lazy, error) {
	if img == nil {
		return nil, ErrNilGrid
	}
	if threshold == 0 {
		threshold = 1
	}
	b := img.Bounds()
	cut := uint32(threshold)
	fn := func(x, y int) bool {
		_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
		return a >= cut
	}
	return &Lazy{width: b.Dx(), height: b.Dy(), fn: fn}, nil
}
