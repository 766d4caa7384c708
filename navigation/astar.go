package navigation

import "github.com/lixenwraith/nightgrid/vmath"

// 4-connected movement, uniform cost
var neighborOffsets = [4][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}

// --- Min-heap for A* open set ---

type heapEntry struct {
	coord GridCoord
	f     float64
}

// less orders by f score, then lexicographically by coordinate so
// equal-cost searches expand in a reproducible order
func (e heapEntry) less(o heapEntry) bool {
	if e.f != o.f {
		return e.f < o.f
	}
	if e.coord.I != o.coord.I {
		return e.coord.I < o.coord.I
	}
	return e.coord.J < o.coord.J
}

type minHeap []heapEntry

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	// Sift up
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !(*h)[i].less((*h)[parent]) {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].less((*h)[left]) {
			smallest = right
		}
		if !(*h)[smallest].less((*h)[i]) {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

// heuristic is the squared Euclidean cell distance. It overestimates
// on long paths, trading strict optimality for a strong goal pull.
func heuristic(a, b GridCoord) float64 {
	di := float64(a.I - b.I)
	dj := float64(a.J - b.J)
	return di*di + dj*dj
}

// FindPath searches the grid for a route between two world positions
// and returns it as a series of waypoints, smoothed against the wall
// set. The first waypoint is the starting cell's center. Returns nil
// when either endpoint sits in a blocked cell or no route exists, and
// an empty path when both endpoints share a cell.
func (g *Grid) FindPath(from, to vmath.Vec2) []vmath.Vec2 {
	start := CoordFromWorld(from)
	goal := CoordFromWorld(to)

	if g.Blocked(start) || g.Blocked(goal) {
		return nil
	}
	if start == goal {
		return []vmath.Vec2{}
	}

	open := minHeap{}
	open.push(heapEntry{coord: start, f: heuristic(start, goal)})
	cameFrom := make(map[GridCoord]GridCoord)
	gScore := map[GridCoord]float64{start: 0}
	closed := make(map[GridCoord]bool)

	for len(open) > 0 {
		current := open.pop().coord
		if closed[current] {
			continue // Stale entry superseded by a cheaper one
		}
		closed[current] = true

		if current == goal {
			return g.refine(reconstruct(cameFrom, current))
		}

		for _, off := range neighborOffsets {
			next := GridCoord{I: current.I + off[0], J: current.J + off[1]}
			if g.Blocked(next) || closed[next] {
				continue
			}
			tentative := gScore[current] + 1
			if prev, seen := gScore[next]; seen && tentative >= prev {
				continue
			}
			cameFrom[next] = current
			gScore[next] = tentative
			open.push(heapEntry{coord: next, f: tentative + heuristic(next, goal)})
		}
	}
	return nil
}

// reconstruct walks the parent links back to the start and returns the
// cell centers in travel order
func reconstruct(cameFrom map[GridCoord]GridCoord, goal GridCoord) []vmath.Vec2 {
	coords := []GridCoord{goal}
	current := goal
	for {
		parent, ok := cameFrom[current]
		if !ok {
			break
		}
		coords = append(coords, parent)
		current = parent
	}

	path := make([]vmath.Vec2, len(coords))
	for i := range coords {
		path[i] = coords[len(coords)-1-i].WorldCenter()
	}
	return path
}

// NextWaypoint picks the waypoint to steer toward: the first point on
// the path outside the cell currently occupied, or the goal itself
// when the path is empty or exhausted
func NextWaypoint(path []vmath.Vec2, from, goal vmath.Vec2) vmath.Vec2 {
	if len(path) == 0 {
		return goal
	}
	current := CoordFromWorld(from)
	for _, wp := range path {
		if CoordFromWorld(wp) != current {
			return wp
		}
	}
	return goal
}
