package component

import (
	"github.com/lixenwraith/nightgrid/parameter"
	"github.com/lixenwraith/nightgrid/vmath"
)

// AIState is the top-level perception state of an enemy
type AIState int

const (
	// StateUnaware means the enemy has no knowledge of the player
	StateUnaware AIState = iota
	// StateSpottedUnsure means a possible sighting is being confirmed
	StateSpottedUnsure
	// StateSurePlayerSeen means the enemy is actively pursuing
	StateSurePlayerSeen
	// StateConfused means contact was lost and the enemy is searching
	StateConfused
)

// Archetype selects the idle behavior of an unaware enemy
type Archetype int

const (
	// ArchetypeIdle enemies stand still until disturbed
	ArchetypeIdle Archetype = iota
	// ArchetypeWandering enemies roam a square around their spawn
	ArchetypeWandering
	// ArchetypePatrolling enemies follow the wander routine as well
	ArchetypePatrolling
)

// WanderState is the sub-state of the roaming routine
type WanderState int

const (
	WanderMoving WanderState = iota
	WanderLookingAround
	WanderWaiting
)

// Wander holds the roaming sub-state of an unaware enemy
type Wander struct {
	State     WanderState
	Timer     float64
	LookTimer float64
	// Direction is the current heading in radians
	Direction float64
}

// AI drives an enemy's perception state machine and combat timers.
// Timers count down in seconds; optional positions carry a paired
// validity flag rather than a sentinel value.
type AI struct {
	State     AIState
	Archetype Archetype

	DetectionRange float64
	AttackRange    float64
	AttackCooldown float64
	AttackTimer    float64

	// StateTimer is reused per state: confirmation delay while
	// spotting, memory window while pursuing
	StateTimer float64

	// CheckPosition is where the enemy stood when it first spotted
	// something, returned to if the sighting is dismissed
	CheckPosition    vmath.Vec2
	HasCheckPosition bool

	// LastKnownPlayerPos is the most recent confirmed player location
	LastKnownPlayerPos vmath.Vec2
	HasLastKnown       bool

	// ConfusionLooksLeft counts remaining search sweeps before giving up
	ConfusionLooksLeft int
	ConfusionLookTimer float64

	// SpawnPosition anchors the wander square
	SpawnPosition      vmath.Vec2
	MovementSquareHalf float64
	Wander             Wander
}

// NewAI builds an unaware AI anchored at the given spawn point
func NewAI(archetype Archetype, spawn vmath.Vec2) AI {
	return AI{
		State:              StateUnaware,
		Archetype:          archetype,
		DetectionRange:     parameter.DetectionRange,
		AttackRange:        parameter.AttackRange,
		AttackCooldown:     parameter.AttackCooldown,
		SpawnPosition:      spawn,
		MovementSquareHalf: parameter.WanderSquareHalfSize,
		Wander:             Wander{State: WanderMoving},
	}
}

// CanAttack reports whether the attack cooldown has elapsed
func (a AI) CanAttack() bool {
	return a.AttackTimer <= 0
}

// ResetAttackTimer restarts the attack cooldown
func (a *AI) ResetAttackTimer() {
	a.AttackTimer = a.AttackCooldown
}
