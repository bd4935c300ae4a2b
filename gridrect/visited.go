package gridrect

import "fmt"

// VisitStrategy selects the storage behind visited-cell tracking. It affects
// memory use only, never the decomposition result.
type VisitStrategy int

const (
	// VisitAuto uses a bitset for Dense grids and for grids up to
	// DefaultSparseThreshold cells, and a sparse set beyond that.
	VisitAuto VisitStrategy = iota
	// VisitDense always uses a W×H bitset: O(1) operations, O(W×H/64) words.
	VisitDense
	// VisitSparse always uses a hash set: memory proportional to occupied cells.
	VisitSparse
)

// DefaultSparseThreshold is the grid area above which VisitAuto switches a
// non-Dense grid to sparse tracking.
const DefaultSparseThreshold = 1 << 24

// String returns "auto", "dense" or "sparse".
func (s VisitStrategy) String() string {
	switch s {
	case VisitAuto:
		return "auto"
	case VisitDense:
		return "dense"
	case VisitSparse:
		return "sparse"
	default:
		return fmt.Sprintf("VisitStrategy(%d)", int(s))
	}
}

// ParseVisitStrategy maps "auto", "dense" or "sparse" to a VisitStrategy.
func ParseVisitStrategy(s string) (VisitStrategy, error) {
	switch s {
	case "", "auto":
		return VisitAuto, nil
	case "dense":
		return VisitDense, nil
	case "sparse":
		return VisitSparse, nil
	}
	return VisitAuto, fmt.Errorf("%w: unknown visit strategy %q", ErrOptionViolation, s)
}

// visitedSet records cells already consumed by some component. One instance
// lives for exactly one call.
type visitedSet interface {
	seen(x, y int) bool
	mark(x, y int)
}

// newVisited picks the storage for g under strategy s.
func newVisited(g Grid, s VisitStrategy) (visitedSet, VisitStrategy) {
	w, h := g.Width(), g.Height()
	switch s {
	case VisitDense:
		return newBitVisited(w, h), VisitDense
	case VisitSparse:
		return newSparseVisited(), VisitSparse
	}
	// w*h may not fit in an int for huge lazy grids
	if _, ok := g.(*Dense); ok || h == 0 || w <= DefaultSparseThreshold/h {
		return newBitVisited(w, h), VisitDense
	}
	return newSparseVisited(), VisitSparse
}

// bitVisited packs one flag per cell, row-major, into 64-bit words.
type bitVisited struct {
	width int
	words []uint64
}

func newBitVisited(w, h int) *bitVisited {
	n := w * h
	words := n / 64
	if n%64 != 0 {
		words++
	}
	return &bitVisited{width: w, words: make([]uint64, words)}
}

func (b *bitVisited) seen(x, y int) bool {
	i := y*b.width + x
	return b.words[i>>6]&(1<<(uint(i)&63)) != 0
}

func (b *bitVisited) mark(x, y int) {
	i := y*b.width + x
	b.words[i>>6] |= 1 << (uint(i) & 63)
}

// sparseVisited stores only marked cells.
type sparseVisited struct {
	m map[Point]struct{}
}

func newSparseVisited() *sparseVisited {
	return &sparseVisited{m: make(map[Point]struct{})}
}

func (s *sparseVisited) seen(x, y int) bool {
	_, ok := s.m[Point{x, y}]
	return ok
}

func (s *sparseVisited) mark(x, y int) {
	s.m[Point{x, y}] = struct{}{}
}
