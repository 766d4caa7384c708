package parameter

// Player entity
const (
	// PlayerSpeed is the player movement speed in units/sec
	PlayerSpeed = 200.0

	// PlayerHealth is the starting/maximum player health
	PlayerHealth = 100

	// PlayerRadius is the player collision circle radius
	PlayerRadius = 15.0

	// PlayerSpawnX, PlayerSpawnY is the default spawn point for all levels
	PlayerSpawnX = 400.0
	PlayerSpawnY = 300.0

	// PlayerTurnSpeed is the facing rotation rate in radians/sec when
	// steering with the turn keys
	PlayerTurnSpeed = 3.5
)

// Melee attack
const (
	// MeleeRange is the reach of a melee swing in world units
	MeleeRange = 50.0

	// MeleeConeHalfAngle bounds the swing to a 90° cone (45° each side)
	MeleeConeHalfAngle = 0.7853981633974483 // π/4
)
