package parameter

// Navigation grid
const (
	// GridCellSize is the side length of one navigation cell in world units
	GridCellSize = 50.0

	// GridBlockRadius is the test-circle radius used when marking cells
	// blocked: 60% of a cell over-blocks near obstacles so agents keep a
	// margin instead of clipping corners
	GridBlockRadius = GridCellSize * 0.6

	// PathPadding inflates walls during line-of-sight checks in path
	// refinement, keeping shortcuts conservative
	PathPadding = 14.0

	// HugMargin is how far short of a padded wall boundary an adjusted
	// waypoint stops
	HugMargin = 2.0
)
