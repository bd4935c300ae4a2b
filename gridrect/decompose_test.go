package gridrect_test

import (
	"bytes"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/gridrect"
)

// lazyOf wraps a dense [][]int as an equivalent predicate plus dimensions.
func lazyOf(grid [][]int) (gridrect.Func, int, int) {
	h := len(grid)
	w := 0
	if h > 0 {
		w = len(grid[0])
	}
	return func(x, y int) bool { return grid[y][x] != 0 }, w, h
}

// scenarios are the reference decompositions every grid realization must reproduce.
var scenarios = []struct {
	name string
	grid [][]int
	want []gridrect.Rect
}{
	{"A_SingleEmpty", [][]int{{0}}, []gridrect.Rect{}},
	{"B_SingleFilled", [][]int{{1}}, []gridrect.Rect{{X: 0, Y: 0, Width: 1, Height: 1}}},
	{
		"C_Staircase",
		[][]int{
			{0, 0, 0, 0, 0},
			{1, 1, 0, 0, 0},
			{0, 1, 1, 0, 0},
			{0, 0, 0, 0, 0},
		},
		[]gridrect.Rect{{X: 0, Y: 1, Width: 3, Height: 2}},
	},
	{
		"D_CrossAndCorner",
		[][]int{
			{0, 0, 1, 0, 0},
			{1, 1, 1, 1, 1},
			{0, 1, 1, 0, 0},
			{0, 1, 0, 0, 1},
		},
		[]gridrect.Rect{{X: 0, Y: 0, Width: 5, Height: 4}, {X: 4, Y: 3, Width: 1, Height: 1}},
	},
	{"NoRows", [][]int{}, []gridrect.Rect{}},
	{"AllEmpty", [][]int{{0, 0, 0}, {0, 0, 0}}, []gridrect.Rect{}},
	{"AllFilled", [][]int{{3, 3, 3}, {3, 3, 3}}, []gridrect.Rect{{X: 0, Y: 0, Width: 3, Height: 2}}},
	{
		"NegativeValuesOccupied",
		[][]int{{-1, 0, 5}},
		[]gridrect.Rect{{X: 0, Y: 0, Width: 1, Height: 1}, {X: 2, Y: 0, Width: 1, Height: 1}},
	},
}

// TestDecompose_Scenarios runs every scenario through the dense entry point,
// the lazy entry point and both visited storages.
func TestDecompose_Scenarios(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			got, err := gridrect.Decompose(sc.grid)
			require.NoError(t, err)
			assert.Equal(t, sc.want, got, "dense")

			fn, w, h := lazyOf(sc.grid)
			got, err = gridrect.DecomposeFunc(fn, w, h)
			require.NoError(t, err)
			assert.Equal(t, sc.want, got, "lazy")

			got, err = gridrect.DecomposeFunc(fn, w, h, gridrect.WithVisitStrategy(gridrect.VisitSparse))
			require.NoError(t, err)
			assert.Equal(t, sc.want, got, "lazy+sparse")

			got, err = gridrect.Decompose(sc.grid, gridrect.WithVisitStrategy(gridrect.VisitSparse))
			require.NoError(t, err)
			assert.Equal(t, sc.want, got, "dense+sparse")
		})
	}
}

// TestDecompose_DiagonalContact verifies that diagonal-only contact keeps
// regions apart under Conn4 and merges them under Conn8.
func TestDecompose_DiagonalContact(t *testing.T) {
	grid := [][]int{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}

	got, err := gridrect.Decompose(grid)
	require.NoError(t, err)
	assert.Equal(t, []gridrect.Rect{
		{X: 0, Y: 0, Width: 1, Height: 1},
		{X: 1, Y: 1, Width: 1, Height: 1},
		{X: 2, Y: 2, Width: 1, Height: 1},
	}, got)

	got, err = gridrect.Decompose(grid, gridrect.WithConnectivity(gridrect.Conn8))
	require.NoError(t, err)
	assert.Equal(t, []gridrect.Rect{{X: 0, Y: 0, Width: 3, Height: 3}}, got)
}

// TestDecompose_Order checks emission by topmost-leftmost cell rather than by
// bounding-box corner, and nested boxes that overlap without sharing cells.
func TestDecompose_Order(t *testing.T) {
	got, err := gridrect.Decompose([][]int{
		{0, 0, 1},
		{1, 0, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []gridrect.Rect{{X: 2, Y: 0, Width: 1, Height: 1}, {X: 0, Y: 1, Width: 1, Height: 1}}, got)

	ring := [][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 1, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	}
	got, err = gridrect.Decompose(ring)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, gridrect.Rect{X: 0, Y: 0, Width: 5, Height: 5}, got[0])
	assert.Equal(t, gridrect.Rect{X: 2, Y: 2, Width: 1, Height: 1}, got[1])
	assert.True(t, got[0].Overlaps(got[1]))
}

// TestRegions_SeedAndCells checks the extra fields carried by Region.
func TestRegions_SeedAndCells(t *testing.T) {
	g, err := gridrect.NewDense([][]int{
		{0, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
		{0, 0, 0},
		{1, 1, 0},
	})
	require.NoError(t, err)

	regions, err := gridrect.Regions(g)
	require.NoError(t, err)
	assert.Equal(t, []gridrect.Region{
		{Bounds: gridrect.Rect{X: 0, Y: 0, Width: 3, Height: 3}, Seed: gridrect.Point{X: 2, Y: 0}, Cells: 6},
		{Bounds: gridrect.Rect{X: 0, Y: 4, Width: 2, Height: 1}, Seed: gridrect.Point{X: 0, Y: 4}, Cells: 2},
	}, regions)
}

// TestDecompose_Errors verifies precondition and option failures.
func TestDecompose_Errors(t *testing.T) {
	_, err := gridrect.Decompose([][]int{{1, 1}, {1}})
	require.ErrorIs(t, err, gridrect.ErrNonRectangular)

	_, err = gridrect.DecomposeFunc(nil, 3, 3)
	require.ErrorIs(t, err, gridrect.ErrNilPredicate)

	_, err = gridrect.DecomposeFunc(func(int, int) bool { return true }, -1, 3)
	require.ErrorIs(t, err, gridrect.ErrNegativeDimension)

	_, err = gridrect.DecomposeGrid(nil)
	require.ErrorIs(t, err, gridrect.ErrNilGrid)

	var nilDense *gridrect.Dense
	_, err = gridrect.DecomposeGrid(nilDense)
	require.ErrorIs(t, err, gridrect.ErrNilGrid)

	_, err = gridrect.DecomposeGrid(badGrid{w: 2, h: -2})
	require.ErrorIs(t, err, gridrect.ErrNegativeDimension)

	bad := []gridrect.Option{
		gridrect.WithConnectivity(gridrect.Connectivity(5)),
		gridrect.WithVisitStrategy(gridrect.VisitStrategy(-1)),
		gridrect.WithMinCells(-2),
	}
	for _, opt := range bad {
		rects, err := gridrect.Decompose([][]int{{1}}, opt)
		require.ErrorIs(t, err, gridrect.ErrOptionViolation)
		require.Nil(t, rects)
	}
}

// TestDecompose_AreaOverflow rejects dimensions whose product overflows int
// instead of indexing an undersized visited set.
func TestDecompose_AreaOverflow(t *testing.T) {
	corner := func(x, y int) bool { return x == 0 && y == 0 }
	for _, wh := range [][2]int{{1 << 62, 4}, {math.MaxInt, 2}, {2, math.MaxInt}, {1 << 32, 1 << 32}} {
		for _, s := range []gridrect.VisitStrategy{gridrect.VisitAuto, gridrect.VisitDense, gridrect.VisitSparse} {
			rects, err := gridrect.DecomposeFunc(corner, wh[0], wh[1], gridrect.WithVisitStrategy(s))
			require.ErrorIs(t, err, gridrect.ErrGridTooLarge, "%d×%d %v", wh[0], wh[1], s)
			require.Nil(t, rects)
		}
	}

	_, _, err := gridrect.Bridge(badGrid{w: 1 << 40, h: 1 << 40}, 0, 1)
	require.ErrorIs(t, err, gridrect.ErrGridTooLarge)

	_, err = gridrect.Components(badGrid{w: math.MaxInt, h: math.MaxInt})
	require.ErrorIs(t, err, gridrect.ErrGridTooLarge)
}

// badGrid is a caller-supplied Grid reporting impossible dimensions.
type badGrid struct{ w, h int }

func (b badGrid) Width() int             { return b.w }
func (b badGrid) Height() int            { return b.h }
func (b badGrid) Occupied(_, _ int) bool { return true }

// TestDecompose_MinCells drops small components but still consumes them.
func TestDecompose_MinCells(t *testing.T) {
	grid := [][]int{
		{1, 0, 1, 1},
		{0, 0, 1, 1},
		{1, 1, 0, 0},
	}

	got, err := gridrect.Decompose(grid, gridrect.WithMinCells(2))
	require.NoError(t, err)
	assert.Equal(t, []gridrect.Rect{{X: 2, Y: 0, Width: 2, Height: 2}, {X: 0, Y: 2, Width: 2, Height: 1}}, got)

	got, err = gridrect.Decompose(grid, gridrect.WithMinCells(3))
	require.NoError(t, err)
	assert.Equal(t, []gridrect.Rect{{X: 2, Y: 0, Width: 2, Height: 2}}, got)

	all, err := gridrect.Decompose(grid, gridrect.WithMinCells(0))
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

// TestDecompose_OnRegion verifies the hook sees every region in output order.
func TestDecompose_OnRegion(t *testing.T) {
	var seen []int
	var bounds []gridrect.Rect
	got, err := gridrect.Decompose(scenarios[3].grid, gridrect.WithOnRegion(func(i int, r gridrect.Region) {
		seen = append(seen, i)
		bounds = append(bounds, r.Bounds)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, seen)
	assert.Equal(t, got, bounds)
}

// TestDecompose_Logging checks the Debug records emitted through WithLogger.
func TestDecompose_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := gridrect.Decompose(scenarios[3].grid, gridrect.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "gridrect: component")
	assert.Contains(t, out, "gridrect: scan complete")
	assert.Contains(t, out, "components=2")
	assert.Contains(t, out, "visit=dense")
	assert.Contains(t, out, "conn=conn4")

	buf.Reset()
	quiet := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	_, err = gridrect.Decompose(scenarios[3].grid, gridrect.WithLogger(quiet))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

// TestDecomposeFunc_QueriesInRangeOnly records every predicate call.
func TestDecomposeFunc_QueriesInRangeOnly(t *testing.T) {
	const w, h = 6, 4
	got, err := gridrect.DecomposeFunc(func(x, y int) bool {
		if x < 0 || x >= w || y < 0 || y >= h {
			t.Errorf("predicate called out of range at (%d,%d)", x, y)
		}
		return (x+y)%3 == 0
	}, w, h)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

// TestDecompose_ZeroDimensions never calls the predicate on an empty field.
func TestDecompose_ZeroDimensions(t *testing.T) {
	fail := func(x, y int) bool {
		t.Fatalf("predicate called at (%d,%d) on a zero-area grid", x, y)
		return false
	}
	for _, wh := range [][2]int{{0, 0}, {0, 5}, {5, 0}} {
		got, err := gridrect.DecomposeFunc(fail, wh[0], wh[1])
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	}
}

// TestDecompose_Concurrent runs independent calls in parallel; all state is call-local.
func TestDecompose_Concurrent(t *testing.T) {
	want, err := gridrect.Decompose(scenarios[3].grid)
	require.NoError(t, err)

	const workers = 16
	results := make([][]gridrect.Rect, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fn, w, h := lazyOf(scenarios[3].grid)
			results[i], errs[i] = gridrect.DecomposeFunc(fn, w, h)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}
