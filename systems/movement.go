package systems

import (
	"github.com/lixenwraith/nightgrid/component"
	"github.com/lixenwraith/nightgrid/engine"
	"github.com/lixenwraith/nightgrid/parameter"
	"github.com/lixenwraith/nightgrid/vmath"
)

// MovementSystem integrates velocities and pushes circular bodies back
// out of walls and the world boundary. Bullets have no Radius and pass
// through here untouched by wall resolution; their own system handles
// impact.
type MovementSystem struct{}

// NewMovementSystem builds a movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update implements engine.System
func (s *MovementSystem) Update(w *engine.World, dt float64) {
	engine.Each2(w, func(e engine.Entity, pos *component.Position, vel *component.Velocity) {
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt

		radius, ok := engine.Get[component.Radius](w, e)
		if !ok {
			return
		}

		p := pos.Vec()
		for _, wall := range w.Walls() {
			p = resolveCircleWall(p, radius.Value, wall)
		}
		p = clampToWorld(p, radius.Value)
		pos.X, pos.Y = p.X, p.Y
	})
}

// resolveCircleWall pushes an overlapping circle out of a wall along
// the shortest escape direction
func resolveCircleWall(p vmath.Vec2, radius float64, wall vmath.Rect) vmath.Vec2 {
	if !vmath.CircleRect(p, radius, wall) {
		return p
	}

	if wall.Contains(p) {
		// Center inside the wall: escape through the nearest face
		left := p.X - wall.X
		right := wall.X + wall.W - p.X
		top := p.Y - wall.Y
		bottom := wall.Y + wall.H - p.Y

		min := left
		out := vmath.Vec2{X: wall.X - radius, Y: p.Y}
		if right < min {
			min = right
			out = vmath.Vec2{X: wall.X + wall.W + radius, Y: p.Y}
		}
		if top < min {
			min = top
			out = vmath.Vec2{X: p.X, Y: wall.Y - radius}
		}
		if bottom < min {
			out = vmath.Vec2{X: p.X, Y: wall.Y + wall.H + radius}
		}
		return out
	}

	cp := wall.ClosestPoint(p)
	away := p.Sub(cp)
	d := away.Length()
	if d == 0 {
		return p
	}
	return cp.Add(away.Scale(radius / d))
}

// clampToWorld keeps a circle inside the world rectangle
func clampToWorld(p vmath.Vec2, radius float64) vmath.Vec2 {
	if p.X < radius {
		p.X = radius
	}
	if p.X > parameter.WorldWidth-radius {
		p.X = parameter.WorldWidth - radius
	}
	if p.Y < radius {
		p.Y = radius
	}
	if p.Y > parameter.WorldHeight-radius {
		p.Y = parameter.WorldHeight - radius
	}
	return p
}
