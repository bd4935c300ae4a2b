package gridrect

// filler expands one component at a time from a seed cell. The queue is
// reused across components of the same call; it holds every cell discovered
// for the current component, in BFS order.
type filler struct {
	g       Grid
	w, h    int
	seen    visitedSet
	offsets [][2]int
	queue   []Point
}

func newFiller(g Grid, seen visitedSet, conn Connectivity) *filler {
	return &filler{
		g:       g,
		w:       g.Width(),
		h:       g.Height(),
		seen:    seen,
		offsets: conn.offsets(),
	}
}

// fill consumes the component containing seed, which must be occupied and not
// yet seen, and returns its bounds. Cells are marked when enqueued, so each is
// enqueued at most once.
//
// Time:   O(component×d).
// Memory: O(component) for the queue.
func (f *filler) fill(seed Point) Region {
	f.queue = append(f.queue[:0], seed)
	f.seen.mark(seed.X, seed.Y)
	minX, maxX := seed.X, seed.X
	minY, maxY := seed.Y, seed.Y

	for qi := 0; qi < len(f.queue); qi++ {
		u := f.queue[qi]
		for _, d := range f.offsets {
			vx, vy := u.X+d[0], u.Y+d[1]
			if vx < 0 || vx >= f.w || vy < 0 || vy >= f.h {
				continue
			}
			if f.seen.seen(vx, vy) || !f.g.Occupied(vx, vy) {
				continue
			}
			f.seen.mark(vx, vy)
			f.queue = append(f.queue, Point{vx, vy})

			minX, maxX = min(minX, vx), max(maxX, vx)
			minY, maxY = min(minY, vy), max(maxY, vy)
		}
	}

	return Region{
		Bounds: Rect{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1},
		Seed:   seed,
		Cells:  len(f.queue),
	}
}
