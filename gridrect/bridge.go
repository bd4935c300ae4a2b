package gridrect

import (
	"container/list"
	"fmt"
	"slices"
)

// Bridge finds a minimum-conversion path of empty cells joining component src
// to component dst, indices as returned by Components (and Regions) under the
// same opts. Each empty cell on the path costs 1; occupied cells are free.
// Returns the path from a src cell to a dst cell, both ends included, and the
// number of empty cells on it.
//
// Behavior:
//  1. Resolve options once, collect components and validate indices.
//  2. Multi-source 0-1 BFS from every src cell:
//     • moving into an occupied cell → cost 0, pushed to the front
//     • moving into an empty cell    → cost 1, pushed to the back
//  3. Stop when any dst cell is dequeued.
//  4. Rebuild the path through predecessor links.
//
// Time:   O(W·H·d).
// Memory: O(W·H) for distances and predecessors.
func Bridge(g Grid, src, dst int, opts ...Option) (path []Point, cost int, err error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, 0, err
	}
	_, comps := scan(g, o, true)
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, fmt.Errorf("%w: src=%d dst=%d, have %d components", ErrComponentIndex, src, dst, len(comps))
	}

	w, h := g.Width(), g.Height()
	index := func(p Point) int { return p.Y*w + p.X }

	isDst := make(map[int]struct{}, len(comps[dst]))
	for _, p := range comps[dst] {
		isDst[index(p)] = struct{}{}
	}

	n := w * h
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// deque: cost-0 moves at the front, cost-1 moves at the back
	dq := list.New()
	for _, p := range comps[src] {
		i := index(p)
		dist[i] = 0
		dq.PushBack(i)
	}

	offsets := o.Conn.offsets()
	target := -1

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := isDst[u]; ok {
			target = u
			break
		}
		ux, uy := u%w, u/w
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			if vx < 0 || vx >= w || vy < 0 || vy >= h {
				continue
			}
			v := vy*w + vx
			step := 0
			if !g.Occupied(vx, vy) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, Point{at % w, at / w})
	}
	slices.Reverse(path)

	return path, dist[target], nil
}
