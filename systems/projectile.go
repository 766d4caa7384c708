package systems

import (
	"github.com/lixenwraith/nightgrid/component"
	"github.com/lixenwraith/nightgrid/engine"
	"github.com/lixenwraith/nightgrid/parameter"
	"github.com/lixenwraith/nightgrid/vmath"
)

// BulletSystem ages projectiles, stops them on walls and world edges,
// and applies their damage to the first enemy they touch. Movement
// integration happens upstream; bullets carry no Radius component so
// wall resolution does not push them back out.
type BulletSystem struct {
	Cues CuePlayer
}

// NewBulletSystem builds a bullet system with optional sound cues
func NewBulletSystem(cues CuePlayer) *BulletSystem {
	return &BulletSystem{Cues: cues}
}

// Update implements engine.System
func (s *BulletSystem) Update(w *engine.World, dt float64) {
	engine.Each2(w, func(e engine.Entity, b *component.Bullet, pos *component.Position) {
		b.Lifetime -= dt
		if b.Lifetime <= 0 {
			w.Despawn(e)
			return
		}

		p := pos.Vec()
		if p.X < 0 || p.X > parameter.WorldWidth || p.Y < 0 || p.Y > parameter.WorldHeight {
			w.Despawn(e)
			return
		}
		for _, wall := range w.Walls() {
			if vmath.CircleRect(p, parameter.BulletRadius, wall) {
				w.Despawn(e)
				return
			}
		}

		if s.hitEnemy(w, p, b.Damage) {
			w.Despawn(e)
			return
		}

		// Leave a fading mark along the flight path
		trail := w.Spawn()
		w.AddComponent(trail, component.PositionAt(p))
		w.AddComponent(trail, component.NewBulletTrail())
	})
}

// hitEnemy damages the first live enemy overlapping the bullet and
// reports whether anything was hit
func (s *BulletSystem) hitEnemy(w *engine.World, p vmath.Vec2, damage int) bool {
	for _, e := range engine.QueryWith[component.Enemy, component.Position](w) {
		hp, ok := engine.Get[component.Health](w, e)
		if !ok || hp.Dead() {
			continue
		}
		pos, _ := engine.Get[component.Position](w, e)
		radius := parameter.EnemyRadius
		if r, ok := engine.Get[component.Radius](w, e); ok {
			radius = r.Value
		}
		if !vmath.CircleCircle(p, parameter.BulletRadius, pos.Vec(), radius) {
			continue
		}
		hp.Damage(damage)
		w.SetComponent(e, hp)
		if hp.Dead() {
			playCue(s.Cues, CueEnemyDown)
		} else {
			playCue(s.Cues, CueHit)
		}
		return true
	}
	return false
}

// TrailSystem fades and removes bullet trail marks
type TrailSystem struct{}

// NewTrailSystem builds a trail system
func NewTrailSystem() *TrailSystem {
	return &TrailSystem{}
}

// Update implements engine.System
func (s *TrailSystem) Update(w *engine.World, dt float64) {
	engine.Each(w, func(e engine.Entity, t *component.BulletTrail) {
		t.Lifetime -= dt
		if t.Lifetime <= 0 {
			w.Despawn(e)
		}
	})
}
