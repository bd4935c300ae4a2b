package gridrect

import (
	"fmt"
	"image"
)

// Connectivity selects neighbor adjacency: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// offsets returns the neighbor deltas for c, in clockwise order starting north.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Point is a cell coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Rect is the minimal axis-aligned box around one component.
// X, Y is the top-left cell; Width and Height are counted in cells and are
// always positive for rectangles produced by this package.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Area returns Width×Height.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Max returns the exclusive bottom-right corner (X+Width, Y+Height).
func (r Rect) Max() (x, y int) {
	return r.X + r.Width, r.Y + r.Height
}

// Contains reports whether cell (x,y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	mx, my := r.Max()
	return x >= r.X && x < mx && y >= r.Y && y < my
}

// Overlaps reports whether r and s share at least one cell.
// Bounding boxes of distinct components may overlap even though their cells never do.
func (r Rect) Overlaps(s Rect) bool {
	rx, ry := r.Max()
	sx, sy := s.Max()
	return r.X < sx && s.X < rx && r.Y < sy && s.Y < ry
}

// Image converts r to an image.Rectangle in the same coordinate space.
func (r Rect) Image() image.Rectangle {
	mx, my := r.Max()
	return image.Rect(r.X, r.Y, mx, my)
}

// String formats r as "(x,y,w,h)".
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.X, r.Y, r.Width, r.Height)
}

// Region describes one emitted component.
type Region struct {
	Bounds Rect  // minimal bounding box
	Seed   Point // topmost-leftmost cell, the one that triggered the fill
	Cells  int   // number of occupied cells in the component
}
