package game

import (
	"github.com/lixenwraith/nightgrid/component"
	"github.com/lixenwraith/nightgrid/engine"
	"github.com/lixenwraith/nightgrid/vmath"
)

// PlayerAlive reports whether a player exists with health remaining
func PlayerAlive(w *engine.World) bool {
	player, ok := engine.First[component.Player](w)
	if !ok {
		return false
	}
	hp, ok := engine.Get[component.Health](w, player)
	return ok && !hp.Dead()
}

// PlayerHealth returns the player's current health, zero if absent
func PlayerHealth(w *engine.World) int {
	player, ok := engine.First[component.Player](w)
	if !ok {
		return 0
	}
	hp, ok := engine.Get[component.Health](w, player)
	if !ok {
		return 0
	}
	return hp.Current
}

// PlayerAmmo returns the rounds left in the player's weapon
func PlayerAmmo(w *engine.World) int {
	player, ok := engine.First[component.Player](w)
	if !ok {
		return 0
	}
	wp, ok := engine.Get[component.Weapon](w, player)
	if !ok {
		return 0
	}
	return wp.Ammo
}

// PlayerPosition returns the player's position and whether one exists
func PlayerPosition(w *engine.World) (vmath.Vec2, bool) {
	player, ok := engine.First[component.Player](w)
	if !ok {
		return vmath.Vec2{}, false
	}
	pos, ok := engine.Get[component.Position](w, player)
	if !ok {
		return vmath.Vec2{}, false
	}
	return pos.Vec(), true
}

// AliveEnemies counts enemies with health remaining
func AliveEnemies(w *engine.World) int {
	n := 0
	for _, e := range engine.Query[component.Enemy](w) {
		if hp, ok := engine.Get[component.Health](w, e); ok && !hp.Dead() {
			n++
		}
	}
	return n
}
