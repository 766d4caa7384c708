package systems

import (
	"math"

	"github.com/lixenwraith/nightgrid/component"
	"github.com/lixenwraith/nightgrid/engine"
	"github.com/lixenwraith/nightgrid/navigation"
	"github.com/lixenwraith/nightgrid/parameter"
	"github.com/lixenwraith/nightgrid/vmath"
)

// AISystem drives enemy perception, pursuit, and idle behavior. One
// navigation grid is built per update and shared by every enemy. All
// randomness flows through the injected generator, so a fixed seed
// replays a run exactly.
type AISystem struct {
	RNG *vmath.FastRand
}

// NewAISystem builds an AI system over the given random source
func NewAISystem(rng *vmath.FastRand) *AISystem {
	return &AISystem{RNG: rng}
}

// Update implements engine.System
func (s *AISystem) Update(w *engine.World, dt float64) {
	grid := navigation.NewGrid(w.Walls())

	var playerPos vmath.Vec2
	playerAlive := false
	if player, ok := engine.First[component.Player](w); ok {
		if pos, ok := engine.Get[component.Position](w, player); ok {
			playerPos = pos.Vec()
			if hp, ok := engine.Get[component.Health](w, player); ok {
				playerAlive = !hp.Dead()
			}
		}
	}

	engine.Each2(w, func(e engine.Entity, ai *component.AI, pos *component.Position) {
		if hp, ok := engine.Get[component.Health](w, e); ok && hp.Dead() {
			w.SetComponent(e, component.Velocity{})
			return
		}

		ai.AttackTimer -= dt

		rot, _ := engine.Get[component.Rotation](w, e)
		speed := parameter.EnemySpeed
		if sp, ok := engine.Get[component.Speed](w, e); ok {
			speed = sp.Value
		}

		p := pos.Vec()
		perceiving := playerAlive && s.perceives(w, p, rot.Angle, playerPos, ai.DetectionRange)

		var vel vmath.Vec2
		facing := rot.Angle
		hasFacing := false

		switch ai.State {
		case component.StateUnaware:
			if perceiving {
				ai.State = component.StateSpottedUnsure
				ai.StateTimer = parameter.SpotDuration
				ai.CheckPosition = p
				ai.HasCheckPosition = true
				ai.LastKnownPlayerPos = playerPos
				ai.HasLastKnown = true
			} else if ai.Archetype != component.ArchetypeIdle {
				vel, facing, hasFacing = s.wander(w, ai, p, speed, dt)
			}

		case component.StateSpottedUnsure:
			if perceiving {
				ai.LastKnownPlayerPos = playerPos
				ai.HasLastKnown = true
				ai.StateTimer -= dt
				if ai.StateTimer <= 0 {
					ai.State = component.StateSurePlayerSeen
					ai.StateTimer = parameter.LostPlayerDuration
				}
				vel, facing, hasFacing = s.pursue(w, grid, p, ai.LastKnownPlayerPos, speed)
			} else {
				// Sighting dismissed, walk back to where it started
				target := ai.CheckPosition
				if !ai.HasCheckPosition {
					target = p
				}
				if p.Distance(target) <= parameter.CheckPositionTolerance {
					ai.State = component.StateUnaware
					ai.HasCheckPosition = false
					ai.HasLastKnown = false
				} else {
					vel, facing, hasFacing = s.pursue(w, grid, p, target, speed)
				}
			}

		case component.StateSurePlayerSeen:
			if perceiving {
				ai.LastKnownPlayerPos = playerPos
				ai.HasLastKnown = true
				ai.StateTimer = parameter.LostPlayerDuration
				if p.Distance(playerPos) < ai.AttackRange {
					// Hold position and keep the player in face
					facing = playerPos.Sub(p).Angle()
					hasFacing = true
				} else {
					vel, facing, hasFacing = s.pursue(w, grid, p, playerPos, speed)
				}
			} else {
				ai.StateTimer -= dt
				if ai.StateTimer <= 0 {
					ai.State = component.StateConfused
					ai.ConfusionLooksLeft = s.RNG.IntRange(parameter.ConfusionLooksMin, parameter.ConfusionLooksMax)
					ai.ConfusionLookTimer = parameter.ConfusionLookDuration
					facing = s.RNG.Range(-math.Pi, math.Pi)
					hasFacing = true
				} else if ai.HasLastKnown {
					vel, facing, hasFacing = s.pursue(w, grid, p, ai.LastKnownPlayerPos, speed)
				}
			}

		case component.StateConfused:
			if perceiving {
				ai.State = component.StateSurePlayerSeen
				ai.StateTimer = parameter.LostPlayerDuration
				ai.LastKnownPlayerPos = playerPos
				ai.HasLastKnown = true
			} else {
				ai.ConfusionLookTimer -= dt
				if ai.ConfusionLookTimer <= 0 {
					ai.ConfusionLooksLeft--
					if ai.ConfusionLooksLeft > 0 {
						ai.ConfusionLookTimer = parameter.ConfusionLookDuration
						facing = s.RNG.Range(-math.Pi, math.Pi)
						hasFacing = true
					} else {
						// Gave up, settle back into idle life
						ai.State = component.StateUnaware
						ai.HasCheckPosition = false
						ai.HasLastKnown = false
						ai.Wander.State = component.WanderWaiting
						ai.Wander.Timer = s.RNG.Range(parameter.WanderMoveMin, parameter.WanderMoveMax)
					}
				}
			}
		}

		w.SetComponent(e, component.Velocity{X: vel.X, Y: vel.Y})
		if hasFacing {
			rot.Angle = vmath.NormalizeAngle(facing)
			w.SetComponent(e, rot)
		}
	})
}

// perceives gates detection on range, the forward vision cone, and an
// unobstructed line of sight
func (s *AISystem) perceives(w *engine.World, from vmath.Vec2, facing float64, target vmath.Vec2, detectionRange float64) bool {
	to := target.Sub(from)
	if to.Length() >= detectionRange {
		return false
	}
	diff := vmath.NormalizeAngle(to.Angle() - facing)
	if math.Abs(diff) > parameter.VisionConeHalfAngle {
		return false
	}
	return vmath.LineOfSight(from, target, w.Walls())
}

// pursue steers toward the target: straight when visible, else via the
// next waypoint of a grid path, else straight as a last resort
func (s *AISystem) pursue(w *engine.World, grid *navigation.Grid, from, target vmath.Vec2, speed float64) (vmath.Vec2, float64, bool) {
	steer := target
	if !vmath.LineOfSight(from, target, w.Walls()) {
		path := grid.FindPath(from, target)
		steer = navigation.NextWaypoint(path, from, target)
	}

	dir := steer.Sub(from)
	d := dir.Length()
	if d < 0.001 {
		return vmath.Vec2{}, 0, false
	}
	vel := dir.Scale(speed / d)
	return vel, dir.Angle(), true
}

// wander runs the idle roam loop: walk a heading inside the movement
// square, sweep a look-around, wait, repeat
func (s *AISystem) wander(w *engine.World, ai *component.AI, p vmath.Vec2, speed float64, dt float64) (vmath.Vec2, float64, bool) {
	switch ai.Wander.State {
	case component.WanderMoving:
		dir := vmath.FromAngle(ai.Wander.Direction)
		probe := p.Add(dir.Scale(parameter.WanderProbeDistance))
		blocked := s.pointBlocked(w, ai, probe)

		ai.Wander.Timer -= dt
		if ai.Wander.Timer <= 0 || blocked {
			ai.Wander.State = component.WanderLookingAround
			ai.Wander.LookTimer = parameter.WanderLookDuration
			if blocked {
				ai.Wander.Direction = s.findMostOpenDirection(w, ai, p)
			}
			return vmath.Vec2{}, ai.Wander.Direction, true
		}
		return dir.Scale(speed), ai.Wander.Direction, true

	case component.WanderLookingAround:
		ai.Wander.LookTimer -= dt
		progress := parameter.WanderLookDuration - ai.Wander.LookTimer
		base := ai.Wander.Direction
		sweep := parameter.WanderLookSweep
		var facing float64
		if progress < 0.5 {
			// Swing to one side, then sweep across to the other
			facing = base - sweep*(progress/0.5)
		} else {
			span := parameter.WanderLookDuration - 0.5
			facing = (base - sweep) + 2*sweep*((progress-0.5)/span)
		}
		if ai.Wander.LookTimer <= 0 {
			ai.Wander.State = component.WanderWaiting
			ai.Wander.Timer = s.RNG.Range(parameter.WanderMoveMin, parameter.WanderMoveMax)
			facing = base
		}
		return vmath.Vec2{}, facing, true

	default: // WanderWaiting
		ai.Wander.Timer -= dt
		if ai.Wander.Timer <= 0 {
			ai.Wander.State = component.WanderMoving
			ai.Wander.Direction = s.findMostOpenDirection(w, ai, p)
			ai.Wander.Timer = s.RNG.Range(parameter.WanderMoveMin, parameter.WanderMoveMax)
		}
		return vmath.Vec2{}, 0, false
	}
}

// pointBlocked reports whether a point is inside a wall or outside the
// enemy's movement square
func (s *AISystem) pointBlocked(w *engine.World, ai *component.AI, p vmath.Vec2) bool {
	if math.Abs(p.X-ai.SpawnPosition.X) > ai.MovementSquareHalf ||
		math.Abs(p.Y-ai.SpawnPosition.Y) > ai.MovementSquareHalf {
		return true
	}
	for _, wall := range w.Walls() {
		if wall.Contains(p) {
			return true
		}
	}
	return false
}

// findMostOpenDirection samples evenly spaced rays and keeps the
// heading with the longest clear run, except half the time it just
// picks a random heading so wandering does not settle into a rut
func (s *AISystem) findMostOpenDirection(w *engine.World, ai *component.AI, p vmath.Vec2) float64 {
	if s.RNG.Float64() < 0.5 {
		return s.RNG.Range(-math.Pi, math.Pi)
	}

	steps := int(parameter.OpenRayReach / parameter.OpenRayStep)
	bestAngle := 0.0
	bestReach := -1
	for i := 0; i < parameter.OpenRayCount; i++ {
		angle := -math.Pi + 2*math.Pi*float64(i)/float64(parameter.OpenRayCount)
		dir := vmath.FromAngle(angle)
		reach := 0
		for k := 1; k <= steps; k++ {
			probe := p.Add(dir.Scale(float64(k) * parameter.OpenRayStep))
			if s.pointBlocked(w, ai, probe) {
				break
			}
			reach = k
		}
		if reach > bestReach {
			bestReach = reach
			bestAngle = angle
		}
	}
	return bestAngle
}
