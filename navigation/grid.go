package navigation

import (
	"math"

	"github.com/lixenwraith/nightgrid/parameter"
	"github.com/lixenwraith/nightgrid/vmath"
)

// GridCoord addresses a cell in the navigation grid
type GridCoord struct {
	I, J int
}

// CoordFromWorld maps a world position to its containing cell.
// Positions on a cell boundary belong to the higher cell.
func CoordFromWorld(p vmath.Vec2) GridCoord {
	return GridCoord{
		I: int(math.Floor(p.X / parameter.GridCellSize)),
		J: int(math.Floor(p.Y / parameter.GridCellSize)),
	}
}

// WorldCenter returns the world position of the cell's center
func (c GridCoord) WorldCenter() vmath.Vec2 {
	return vmath.Vec2{
		X: float64(c.I)*parameter.GridCellSize + parameter.GridCellSize/2,
		Y: float64(c.J)*parameter.GridCellSize + parameter.GridCellSize/2,
	}
}

// Grid is a uniform occupancy grid over the world rectangle. A cell is
// blocked when a circle of GridBlockRadius at its center overlaps any
// wall, which keeps paths a safe margin away from geometry.
type Grid struct {
	Cols, Rows int
	blocked    []bool
	walls      []vmath.Rect
}

// NewGrid rasterizes the wall set into an occupancy grid
func NewGrid(walls []vmath.Rect) *Grid {
	cols := int(parameter.WorldWidth / parameter.GridCellSize)
	rows := int(parameter.WorldHeight / parameter.GridCellSize)
	g := &Grid{
		Cols:    cols,
		Rows:    rows,
		blocked: make([]bool, cols*rows),
		walls:   walls,
	}
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			center := GridCoord{I: i, J: j}.WorldCenter()
			for _, wall := range walls {
				if vmath.CircleRect(center, parameter.GridBlockRadius, wall) {
					g.blocked[j*cols+i] = true
					break
				}
			}
		}
	}
	return g
}

// InBounds reports whether a coordinate lies inside the grid
func (g *Grid) InBounds(c GridCoord) bool {
	return c.I >= 0 && c.I < g.Cols && c.J >= 0 && c.J < g.Rows
}

// Blocked reports whether a cell is impassable. Out-of-bounds cells
// are blocked.
func (g *Grid) Blocked(c GridCoord) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[c.J*g.Cols+c.I]
}

// Walls returns the wall set the grid was built from
func (g *Grid) Walls() []vmath.Rect {
	return g.walls
}
