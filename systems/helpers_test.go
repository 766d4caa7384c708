package systems

import (
	"github.com/lixenwraith/nightgrid/component"
	"github.com/lixenwraith/nightgrid/engine"
	"github.com/lixenwraith/nightgrid/parameter"
	"github.com/lixenwraith/nightgrid/vmath"
)

func newTestWorld() *engine.World {
	return engine.NewWorld()
}

func addPlayer(w *engine.World, x, y float64) engine.Entity {
	e := w.Spawn()
	w.AddComponent(e, component.Player{})
	w.AddComponent(e, component.Position{X: x, Y: y})
	w.AddComponent(e, component.Velocity{})
	w.AddComponent(e, component.Speed{Value: parameter.PlayerSpeed})
	w.AddComponent(e, component.NewHealth(parameter.PlayerHealth))
	w.AddComponent(e, component.Rotation{})
	w.AddComponent(e, component.Radius{Value: parameter.PlayerRadius})
	w.AddComponent(e, component.NewWeapon(component.WeaponPistol))
	return e
}

func addEnemy(w *engine.World, x, y float64, archetype component.Archetype) engine.Entity {
	e := w.Spawn()
	w.AddComponent(e, component.Enemy{})
	w.AddComponent(e, component.Position{X: x, Y: y})
	w.AddComponent(e, component.Velocity{})
	w.AddComponent(e, component.Speed{Value: parameter.EnemySpeed})
	w.AddComponent(e, component.NewHealth(parameter.EnemyHealth))
	w.AddComponent(e, component.Rotation{})
	w.AddComponent(e, component.Radius{Value: parameter.EnemyRadius})
	w.AddComponent(e, component.NewAI(archetype, vmath.Vec2{X: x, Y: y}))
	return e
}

// recordedCues captures the cue stream for assertions
type recordedCues struct {
	played []Cue
}

func (r *recordedCues) Play(c Cue) {
	r.played = append(r.played, c)
}

func (r *recordedCues) count(c Cue) int {
	n := 0
	for _, p := range r.played {
		if p == c {
			n++
		}
	}
	return n
}
