package game

import (
	"github.com/lixenwraith/nightgrid/engine"
	"github.com/lixenwraith/nightgrid/systems"
	"github.com/lixenwraith/nightgrid/vmath"
)

// NewPipeline assembles the per-frame system order: input shapes the
// player, weapons cool down, enemies think, everything moves, combat
// resolves, then projectiles and their trails tick
func NewPipeline(src systems.Source, rng *vmath.FastRand, cues systems.CuePlayer) *engine.Pipeline {
	return engine.NewPipeline(
		systems.NewInputSystem(src),
		systems.NewWeaponSystem(),
		systems.NewAISystem(rng),
		systems.NewMovementSystem(),
		systems.NewCombatSystem(cues),
		systems.NewBulletSystem(cues),
		systems.NewTrailSystem(),
	)
}
