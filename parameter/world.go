package parameter

// World dimensions
const (
	// WorldWidth is the playfield width in world units
	WorldWidth = 2000.0

	// WorldHeight is the playfield height in world units
	WorldHeight = 2000.0
)
