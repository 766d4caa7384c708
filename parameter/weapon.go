package parameter

// Bullets and trails
const (
	// BulletSpeed is projectile travel speed in units/sec
	BulletSpeed = 800.0

	// BulletLifetime is seconds before an unhit bullet expires
	BulletLifetime = 2.0

	// BulletRadius is the projectile collision circle radius
	BulletRadius = 2.0

	// TrailLifetime is seconds a muzzle/impact trail stays visible
	TrailLifetime = 0.15
)
