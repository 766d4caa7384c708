package parameter

// Enemy entity
const (
	// EnemySpeed is the enemy movement speed in units/sec
	EnemySpeed = 100.0

	// EnemyHealth is the starting enemy health
	EnemyHealth = 50

	// EnemyRadius is the enemy collision circle radius
	EnemyRadius = 12.0

	// EnemyMeleeDamage is dealt to the player per landed enemy attack
	EnemyMeleeDamage = 10
)

// Perception
const (
	// DetectionRange is how far an enemy can perceive the player
	DetectionRange = 300.0

	// VisionConeHalfAngle is half the forward vision cone: 45° each side
	// of facing gives the 90° cone
	VisionConeHalfAngle = 0.7853981633974483 // π/4

	// AttackRange is the distance at which an enemy stops closing and
	// attacks instead
	AttackRange = 40.0

	// AttackCooldown is seconds between enemy attacks
	AttackCooldown = 1.0
)

// Perception state machine timers, all in seconds
const (
	// SpotDuration is how long continuous perception must last before
	// SpottedUnsure escalates to SurePlayerSeen
	SpotDuration = 0.3

	// LostPlayerDuration is how long a pursuing enemy tolerates losing
	// perception before becoming Confused
	LostPlayerDuration = 2.0

	// ConfusionLookDuration is the length of one confused look-around
	ConfusionLookDuration = 1.0

	// ConfusionLooksMin, ConfusionLooksMax bound the randomized number of
	// look-arounds performed while Confused
	ConfusionLooksMin = 2
	ConfusionLooksMax = 3

	// CheckPositionTolerance is how close an unsure enemy must return to
	// its check position before reverting to Unaware
	CheckPositionTolerance = 5.0
)

// Wander behavior
const (
	// WanderSquareHalfSize bounds idle wandering to a square about spawn
	WanderSquareHalfSize = 150.0

	// WanderMoveMin, WanderMoveMax bound the randomized duration of one
	// wander leg, and of the wait between legs
	WanderMoveMin = 1.0
	WanderMoveMax = 2.0

	// WanderLookDuration is the length of the look-around sweep between
	// wander legs
	WanderLookDuration = 1.5

	// WanderLookSweep is the half-width of the look-around sweep in
	// radians (70° each side of heading)
	WanderLookSweep = 1.2217304763960306 // 70° in radians

	// WanderProbeDistance is how far ahead a moving wanderer probes for
	// walls and the square boundary
	WanderProbeDistance = 5.0

	// OpenRayCount is the number of evenly spaced directions sampled when
	// re-choosing a wander heading
	OpenRayCount = 36

	// OpenRayReach is the maximum ray length sampled, in world units
	OpenRayReach = 200.0

	// OpenRayStep is the sampling interval along each ray
	OpenRayStep = 10.0
)
