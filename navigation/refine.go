package navigation

import (
	"github.com/lixenwraith/nightgrid/parameter"
	"github.com/lixenwraith/nightgrid/vmath"
)

// refine smooths a raw cell-center path: string pulling drops
// waypoints already reachable in a straight padded line, then wall
// hugging tightens the survivors around corners
func (g *Grid) refine(path []vmath.Vec2) []vmath.Vec2 {
	path = pullString(path, g.walls)
	return hugWalls(path, g.walls)
}

// pullString greedily shortcuts the path: from each anchor it jumps to
// the farthest waypoint still visible along a corridor inflated by
// PathPadding, so the shortcut leaves clearance for the agent's body.
// The endpoints always survive; paths of two or fewer points are
// returned unchanged.
func pullString(path []vmath.Vec2, walls []vmath.Rect) []vmath.Vec2 {
	if len(path) <= 2 {
		return path
	}

	out := []vmath.Vec2{path[0]}
	i := 0
	for i < len(path)-1 {
		j := len(path) - 1
		for j > i+1 && !vmath.LineOfSightPadded(path[i], path[j], walls, parameter.PathPadding) {
			j--
		}
		out = append(out, path[j])
		i = j
	}
	return out
}

// hugWalls tightens interior waypoints around corners. A waypoint is a
// corner when the straight segment between its neighbors is blocked by
// a padded wall; the waypoint is pulled toward that blocking wall,
// stopping HugMargin short of the padded boundary. When the segment
// crosses several padded walls the one closest to the waypoint wins.
// A waypoint moves only when straight lines to both neighbors stay
// clear from its new spot.
func hugWalls(path []vmath.Vec2, walls []vmath.Rect) []vmath.Vec2 {
	if len(path) <= 2 || len(walls) == 0 {
		return path
	}

	out := make([]vmath.Vec2, len(path))
	copy(out, path)

	hugDistance := parameter.PathPadding - parameter.HugMargin
	for k := 1; k < len(out)-1; k++ {
		wp := out[k]

		// The wall forcing the detour through this waypoint
		var blocker *vmath.Rect
		blockerDist := parameter.GridCellSize
		for i := range walls {
			if !vmath.SegmentRect(out[k-1], out[k+1], walls[i].Inflate(parameter.PathPadding)) {
				continue
			}
			d := wp.Distance(walls[i].ClosestPoint(wp))
			if d < blockerDist {
				blockerDist = d
				blocker = &walls[i]
			}
		}
		if blocker == nil || blockerDist <= hugDistance {
			continue
		}

		cp := blocker.ClosestPoint(wp)
		away := wp.Sub(cp)
		if away.LengthSq() == 0 {
			continue // Waypoint inside the wall, leave it alone
		}
		candidate := cp.Add(away.Normalize().Scale(hugDistance))

		if vmath.LineOfSight(out[k-1], candidate, walls) && vmath.LineOfSight(candidate, out[k+1], walls) {
			out[k] = candidate
		}
	}
	return out
}
