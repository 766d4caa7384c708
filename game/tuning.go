package game

import (
	"github.com/lixenwraith/nightgrid/component"
	"github.com/lixenwraith/nightgrid/engine"
)

// Tuning carries optional stat overrides applied after setup. Zero
// values leave the built-in parameters alone.
type Tuning struct {
	PlayerSpeed    float64
	EnemySpeed     float64
	DetectionRange float64
}

// ApplyTuning rewrites spawned entity stats with the overrides
func ApplyTuning(w *engine.World, t Tuning) {
	if t.PlayerSpeed > 0 {
		if player, ok := engine.First[component.Player](w); ok {
			w.SetComponent(player, component.Speed{Value: t.PlayerSpeed})
		}
	}
	for _, e := range engine.Query[component.Enemy](w) {
		if t.EnemySpeed > 0 {
			w.SetComponent(e, component.Speed{Value: t.EnemySpeed})
		}
		if t.DetectionRange > 0 {
			if ai, ok := engine.Get[component.AI](w, e); ok {
				ai.DetectionRange = t.DetectionRange
				w.SetComponent(e, ai)
			}
		}
	}
}
