package systems

import (
	"math"

	"github.com/lixenwraith/nightgrid/component"
	"github.com/lixenwraith/nightgrid/engine"
	"github.com/lixenwraith/nightgrid/parameter"
	"github.com/lixenwraith/nightgrid/vmath"
)

// CombatSystem resolves the player's fire and melee intents into
// projectiles and swings, and lets pursuing enemies strike the player
// when in range and off cooldown
type CombatSystem struct {
	Cues CuePlayer
}

// NewCombatSystem builds a combat system with optional sound cues
func NewCombatSystem(cues CuePlayer) *CombatSystem {
	return &CombatSystem{Cues: cues}
}

// Update implements engine.System
func (s *CombatSystem) Update(w *engine.World, dt float64) {
	s.resolvePlayerIntents(w)
	s.resolveEnemyAttacks(w)
}

func (s *CombatSystem) resolvePlayerIntents(w *engine.World) {
	player, ok := engine.First[component.Player](w)
	if !ok {
		return
	}
	_, fire := engine.Remove[component.FireIntent](w, player)
	_, melee := engine.Remove[component.MeleeIntent](w, player)

	if hp, ok := engine.Get[component.Health](w, player); ok && hp.Dead() {
		return
	}
	pos, ok := engine.Get[component.Position](w, player)
	if !ok {
		return
	}
	angle := 0.0
	if rot, ok := engine.Get[component.Rotation](w, player); ok {
		angle = rot.Angle
	}

	if fire {
		if wp, ok := engine.Get[component.Weapon](w, player); ok && wp.CanFire() {
			wp.Fire()
			w.SetComponent(player, wp)
			if wp.Type == component.WeaponMelee {
				s.swing(w, pos.Vec(), angle, wp.Damage)
			} else {
				ProcessShoot(w, pos.Vec(), angle, wp.Damage)
				playCue(s.Cues, CueShoot)
			}
		}
	}
	if melee {
		s.swing(w, pos.Vec(), angle, component.NewWeapon(component.WeaponMelee).Damage)
	}
}

func (s *CombatSystem) swing(w *engine.World, from vmath.Vec2, angle float64, damage int) {
	playCue(s.Cues, CueMelee)
	if ProcessMelee(w, from, angle, damage) > 0 {
		playCue(s.Cues, CueHit)
	}
}

func (s *CombatSystem) resolveEnemyAttacks(w *engine.World) {
	player, ok := engine.First[component.Player](w)
	if !ok {
		return
	}
	playerPos, ok := engine.Get[component.Position](w, player)
	if !ok {
		return
	}
	playerHP, ok := engine.Get[component.Health](w, player)
	if !ok || playerHP.Dead() {
		return
	}

	hurt := false
	engine.Each2(w, func(e engine.Entity, ai *component.AI, pos *component.Position) {
		if hp, ok := engine.Get[component.Health](w, e); ok && hp.Dead() {
			return
		}
		if ai.State != component.StateSurePlayerSeen || !ai.CanAttack() {
			return
		}
		if pos.DistanceTo(playerPos) >= ai.AttackRange {
			return
		}
		ai.ResetAttackTimer()
		playerHP.Damage(parameter.EnemyMeleeDamage)
		hurt = true
	})

	if hurt {
		w.SetComponent(player, playerHP)
		playCue(s.Cues, CuePlayerHurt)
	}
}

// ProcessShoot spawns a projectile leaving the shooter's muzzle along
// the facing angle and returns its entity
func ProcessShoot(w *engine.World, from vmath.Vec2, angle float64, damage int) engine.Entity {
	dir := vmath.FromAngle(angle)
	muzzle := from.Add(dir.Scale(parameter.PlayerRadius + parameter.BulletRadius + 1))

	e := w.Spawn()
	w.AddComponent(e, component.PositionAt(muzzle))
	w.AddComponent(e, component.Velocity{X: dir.X * parameter.BulletSpeed, Y: dir.Y * parameter.BulletSpeed})
	w.AddComponent(e, component.NewBullet(damage))
	return e
}

// ProcessMelee damages every live enemy within melee reach inside a
// 90° cone about the facing angle and returns the number hit
func ProcessMelee(w *engine.World, from vmath.Vec2, angle float64, damage int) int {
	hits := 0
	engine.Each2(w, func(e engine.Entity, _ *component.Enemy, pos *component.Position) {
		hp, ok := engine.Get[component.Health](w, e)
		if !ok || hp.Dead() {
			return
		}
		to := pos.Vec().Sub(from)
		if to.Length() > parameter.MeleeRange {
			return
		}
		diff := vmath.NormalizeAngle(to.Angle() - angle)
		if math.Abs(diff) > parameter.MeleeConeHalfAngle {
			return
		}
		hp.Damage(damage)
		w.SetComponent(e, hp)
		hits++
	})
	return hits
}
