package gridrect

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
)

// Decompose returns one bounding Rect per connected region of nonzero cells in
// values, in raster order of each region's topmost-leftmost cell.
// Zero rows yield an empty result. Returns ErrNonRectangular for ragged rows.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for the grid copy and visited bits.
func Decompose(values [][]int, opts ...Option) ([]Rect, error) {
	g, err := NewDense(values)
	if err != nil {
		return nil, err
	}
	return DecomposeGrid(g, opts...)
}

// DecomposeFunc is Decompose over a lazy predicate of the given dimensions.
// For the same cells it returns exactly what Decompose returns.
// fn must be total and stable over [0,width)×[0,height) for the whole call.
func DecomposeFunc(fn Func, width, height int, opts ...Option) ([]Rect, error) {
	g, err := NewLazy(fn, width, height)
	if err != nil {
		return nil, err
	}
	return DecomposeGrid(g, opts...)
}

// DecomposeGrid returns one bounding Rect per component of g.
func DecomposeGrid(g Grid, opts ...Option) ([]Rect, error) {
	regions, err := Regions(g, opts...)
	if err != nil {
		return nil, err
	}
	rects := make([]Rect, len(regions))
	for i, r := range regions {
		rects[i] = r.Bounds
	}
	return rects, nil
}

// Regions returns one Region per component of g, carrying its bounds, seed
// cell and cell count. Order matches DecomposeGrid.
func Regions(g Grid, opts ...Option) ([]Region, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	regions, _ := scan(g, o, false)
	return regions, nil
}

// Components returns the cells of every component of g, in the same order as
// Regions. Cells within a component are in discovery order, seed first.
// Unlike Regions, memory grows with the total number of occupied cells.
func Components(g Grid, opts ...Option) ([][]Point, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	_, cells := scan(g, o, true)
	return cells, nil
}

// prepare validates g and resolves options.
func prepare(g Grid, opts []Option) (Options, error) {
	switch v := g.(type) {
	case nil:
		return Options{}, ErrNilGrid
	case *Dense:
		if v == nil {
			return Options{}, ErrNilGrid
		}
	case *Lazy:
		if v == nil {
			return Options{}, ErrNilGrid
		}
	}
	w, h := g.Width(), g.Height()
	if w < 0 || h < 0 {
		return Options{}, fmt.Errorf("%w: got %d×%d", ErrNegativeDimension, w, h)
	}
	if h > 0 && w > math.MaxInt/h {
		return Options{}, fmt.Errorf("%w: got %d×%d", ErrGridTooLarge, w, h)
	}
	return gatherOptions(opts)
}

// scan raster-scans g and fills every unvisited occupied cell it meets.
// With collect set, it also returns a copy of each kept component's cells.
func scan(g Grid, o Options, collect bool) ([]Region, [][]Point) {
	w, h := g.Width(), g.Height()
	seen, strategy := newVisited(g, o.Visit)
	f := newFiller(g, seen, o.Conn)

	ctx := context.Background()
	debug := o.Logger.Enabled(ctx, slog.LevelDebug)

	regions := make([]Region, 0)
	var cells [][]Point
	dropped := 0

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if seen.seen(x, y) || !g.Occupied(x, y) {
				continue
			}
			r := f.fill(Point{x, y})
			if r.Cells < o.MinCells {
				dropped++
				continue
			}
			idx := len(regions)
			regions = append(regions, r)
			if collect {
				cells = append(cells, slices.Clone(f.queue))
			}
			if debug {
				o.Logger.LogAttrs(ctx, slog.LevelDebug, "gridrect: component",
					slog.Int("index", idx),
					slog.String("bounds", r.Bounds.String()),
					slog.Int("cells", r.Cells),
				)
			}
			o.OnRegion(idx, r)
		}
	}

	if debug {
		o.Logger.LogAttrs(ctx, slog.LevelDebug, "gridrect: scan complete",
			slog.Int("width", w),
			slog.Int("height", h),
			slog.String("conn", o.Conn.String()),
			slog.String("visit", strategy.String()),
			slog.Int("components", len(regions)),
			slog.Int("dropped", dropped),
		)
	}

	return regions, cells
}
