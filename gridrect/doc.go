// Package gridrect partitions a 2D occupancy grid into axis-aligned bounding
// rectangles, one per maximal connected region of occupied cells.
//
// What:
//
//   - Grid is the single access seam: Width, Height and Occupied(x, y).
//   - Dense wraps a materialized grid ([][]int, [][]bool, any comparable cell type).
//   - Lazy wraps a caller-supplied predicate plus explicit width and height,
//     for procedural or very large sources that should not be materialized.
//   - Decompose / DecomposeFunc / DecomposeGrid return one Rect per component.
//   - Regions adds the seed cell and the cell count of each component.
//   - Components returns the full cell list of each component.
//   - Bridge finds the cheapest set of empty cells joining two components.
//
// Why:
//
//   - Sprite and atlas packing: trim transparent margins per island.
//   - Map analysis: bound rooms, lakes and islands in tile maps.
//   - Damage tracking: coalesce dirty cells into redraw rectangles.
//
// Semantics:
//
//   - Coordinates are (X = column, Y = row), zero-based, Y grows downward.
//   - Connectivity is orthogonal (Conn4) unless WithConnectivity(Conn8) is given;
//     regions touching only diagonally are separate components under Conn4.
//   - Output order is deterministic: components are emitted in ascending
//     (row, column) order of their topmost-leftmost cell.
//   - Each Rect is the minimal box around one component; it may contain empty
//     cells. No tiling or overlap resolution is attempted.
//   - A Dense grid and a Lazy grid describing the same cells yield identical output.
//
// Complexity:
//
//   - Decompose: O(W×H×d) time (d = 4 or 8), every cell visited at most once.
//   - Memory:    O(W×H/64) words for the dense visited bitset, or O(occupied)
//     for the sparse set, plus an O(component) queue.
//   - Bridge:    O(W×H×d) time, O(W×H) memory.
//
// Preconditions:
//
//   - Width and height are non-negative; dense rows are equal length.
//   - A Lazy predicate must be total and return stable answers for the duration
//     of one call. This cannot be enforced by the type system; a predicate that
//     closes over data mutated mid-call produces undefined output.
//
// Errors:
//
//   - ErrNonRectangular: dense rows have differing lengths.
//   - ErrNegativeDimension: lazy width or height below zero.
//   - ErrNilPredicate, ErrNilGrid: absent occupancy source.
//   - ErrOptionViolation: an Option was given a nonsensical value.
//   - ErrComponentIndex, ErrNoPath: Bridge lookups.
//
// Concurrency:
//
//	All traversal state is call-local. Independent calls may run concurrently;
//	a single call never spawns goroutines.
package gridrect
