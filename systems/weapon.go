package systems

import (
	"github.com/lixenwraith/nightgrid/component"
	"github.com/lixenwraith/nightgrid/engine"
)

// WeaponSystem decays fire-rate timers so weapons become ready again
type WeaponSystem struct{}

// NewWeaponSystem builds a weapon system
func NewWeaponSystem() *WeaponSystem {
	return &WeaponSystem{}
}

// Update implements engine.System
func (s *WeaponSystem) Update(w *engine.World, dt float64) {
	engine.Each(w, func(_ engine.Entity, wp *component.Weapon) {
		if wp.FireTimer > 0 {
			wp.FireTimer -= dt
		}
	})
}
