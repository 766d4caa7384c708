// Package game wires the simulation together: level layouts, entity
// archetypes, the system pipeline, and the state queries the outer
// shell reads.
package game

import (
	"fmt"
	"math"

	"github.com/lixenwraith/nightgrid/component"
	"github.com/lixenwraith/nightgrid/engine"
	"github.com/lixenwraith/nightgrid/parameter"
	"github.com/lixenwraith/nightgrid/vmath"
)

// SpawnPlayer creates the player entity at the given position
func SpawnPlayer(w *engine.World, pos vmath.Vec2) engine.Entity {
	e := w.Spawn()
	w.AddComponent(e, component.Player{})
	w.AddComponent(e, component.PositionAt(pos))
	w.AddComponent(e, component.Velocity{})
	w.AddComponent(e, component.Speed{Value: parameter.PlayerSpeed})
	w.AddComponent(e, component.NewHealth(parameter.PlayerHealth))
	w.AddComponent(e, component.Rotation{})
	w.AddComponent(e, component.Radius{Value: parameter.PlayerRadius})
	w.AddComponent(e, component.NewWeapon(component.WeaponPistol))
	return e
}

// SpawnEnemy creates an enemy entity anchored at the given position
func SpawnEnemy(w *engine.World, pos vmath.Vec2, archetype component.Archetype) engine.Entity {
	e := w.Spawn()
	w.AddComponent(e, component.Enemy{})
	w.AddComponent(e, component.PositionAt(pos))
	w.AddComponent(e, component.Velocity{})
	w.AddComponent(e, component.Speed{Value: parameter.EnemySpeed})
	w.AddComponent(e, component.NewHealth(parameter.EnemyHealth))
	w.AddComponent(e, component.Rotation{})
	w.AddComponent(e, component.Radius{Value: parameter.EnemyRadius})
	w.AddComponent(e, component.NewAI(archetype, pos))
	return e
}

// Setup populates an empty world from a level definition: walls, the
// player at the common spawn point, and the level's enemies. Levels
// without an explicit enemy list get the standard ring formation.
func Setup(w *engine.World, levels []Level, index int) error {
	if index < 0 || index >= len(levels) {
		return fmt.Errorf("level %d out of range, have %d levels", index, len(levels))
	}
	lvl := levels[index]

	for _, wall := range lvl.Walls {
		w.AddWall(vmath.Rect{X: wall.X, Y: wall.Y, W: wall.W, H: wall.H})
	}

	SpawnPlayer(w, vmath.Vec2{X: parameter.PlayerSpawnX, Y: parameter.PlayerSpawnY})

	spawns := lvl.Enemies
	if len(spawns) == 0 {
		spawns = ringFormation(index)
	}
	for i, sp := range spawns {
		SpawnEnemy(w, vmath.Vec2{X: sp.X, Y: sp.Y}, archetypeFor(i))
	}
	return nil
}

// Restart clears the world and rebuilds the same level
func Restart(w *engine.World, levels []Level, index int) error {
	w.Clear()
	w.ClearWalls()
	return Setup(w, levels, index)
}

// archetypeFor cycles enemy idle behaviors so each level mixes
// standers, wanderers, and patrollers
func archetypeFor(i int) component.Archetype {
	switch i % 3 {
	case 0:
		return component.ArchetypeIdle
	case 1:
		return component.ArchetypeWandering
	}
	return component.ArchetypePatrolling
}

// ringFormation places twelve enemies on a rough circle around the
// arena center, jittered per level so formations never repeat exactly
func ringFormation(level int) []Spawn {
	const count = 12
	offset := math.Mod(float64(level)*13.7, 100)
	spawns := make([]Spawn, 0, count)
	for i := 0; i < count; i++ {
		angle := float64(i) * 2 * math.Pi / count
		radius := 250.0 + offset
		x := 500 + radius*math.Cos(angle)
		y := 400 + radius*math.Sin(angle)
		x += float64((i*17+level*23)%100) - 50
		y += float64((i*31+level*19)%100) - 50
		spawns = append(spawns, Spawn{X: x, Y: y})
	}
	return spawns
}
