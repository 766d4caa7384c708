package systems

import (
	"github.com/lixenwraith/nightgrid/component"
	"github.com/lixenwraith/nightgrid/engine"
	"github.com/lixenwraith/nightgrid/input"
	"github.com/lixenwraith/nightgrid/parameter"
	"github.com/lixenwraith/nightgrid/vmath"
)

// Source delivers one input snapshot per frame
type Source interface {
	Drain() input.State
}

// InputSystem applies a drained input snapshot to the player entity:
// movement becomes velocity, turn keys rotate facing, and fire, melee,
// and weapon-switch intents are attached for downstream systems
type InputSystem struct {
	Source Source
}

// NewInputSystem builds an input system over the given source
func NewInputSystem(src Source) *InputSystem {
	return &InputSystem{Source: src}
}

// Update implements engine.System
func (s *InputSystem) Update(w *engine.World, dt float64) {
	if s.Source == nil {
		return
	}
	st := s.Source.Drain()

	player, ok := engine.First[component.Player](w)
	if !ok {
		return
	}
	if hp, ok := engine.Get[component.Health](w, player); ok && hp.Dead() {
		// Dead players keep drifting to a stop
		w.SetComponent(player, component.Velocity{})
		return
	}

	speed := parameter.PlayerSpeed
	if sp, ok := engine.Get[component.Speed](w, player); ok {
		speed = sp.Value
	}

	vel := component.Velocity{}
	if st.Move.LengthSq() > 0 {
		dir := st.Move.Normalize()
		vel = component.Velocity{X: dir.X * speed, Y: dir.Y * speed}
	}
	w.SetComponent(player, vel)

	if rot, ok := engine.Get[component.Rotation](w, player); ok {
		if st.Turn != 0 {
			rot.Angle = vmath.NormalizeAngle(rot.Angle + st.Turn*parameter.PlayerTurnSpeed*dt)
			w.SetComponent(player, rot)
		}
	}

	if st.Weapon >= 1 && st.Weapon <= 4 {
		w.SetComponent(player, component.NewWeapon(component.WeaponType(st.Weapon-1)))
	}
	if st.Fire {
		w.AddComponent(player, component.FireIntent{})
	}
	if st.Melee {
		w.AddComponent(player, component.MeleeIntent{})
	}
}
