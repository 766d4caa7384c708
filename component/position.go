package component

import "github.com/lixenwraith/nightgrid/vmath"

// Position is a location in 2D world space
type Position struct {
	X, Y float64
}

// PositionAt builds a Position from a vector
func PositionAt(v vmath.Vec2) Position {
	return Position{X: v.X, Y: v.Y}
}

// Vec returns the position as a vector
func (p Position) Vec() vmath.Vec2 {
	return vmath.Vec2{X: p.X, Y: p.Y}
}

// DistanceTo returns the Euclidean distance to another position
func (p Position) DistanceTo(o Position) float64 {
	return p.Vec().Distance(o.Vec())
}

// Velocity is linear movement in units/sec, integrated by the movement system
type Velocity struct {
	X, Y float64
}
