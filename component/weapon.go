package component

import "github.com/lixenwraith/nightgrid/parameter"

// WeaponType identifies a weapon archetype
type WeaponType int

const (
	WeaponPistol WeaponType = iota
	WeaponShotgun
	WeaponMachineGun
	WeaponMelee
)

// String returns a display name for the weapon type
func (t WeaponType) String() string {
	switch t {
	case WeaponPistol:
		return "Pistol"
	case WeaponShotgun:
		return "Shotgun"
	case WeaponMachineGun:
		return "MachineGun"
	case WeaponMelee:
		return "Melee"
	}
	return "Unknown"
}

// Weapon holds ammo and the fire-rate timer for an armed entity
type Weapon struct {
	Type     WeaponType
	Damage   int
	Ammo     int
	FireRate float64
	// FireTimer counts down to the next allowed shot
	FireTimer float64
}

// NewWeapon builds a weapon with archetype stats and full ammo
func NewWeapon(t WeaponType) Weapon {
	switch t {
	case WeaponShotgun:
		return Weapon{Type: t, Damage: 80, Ammo: 6, FireRate: 1.0}
	case WeaponMachineGun:
		return Weapon{Type: t, Damage: 30, Ammo: 30, FireRate: 0.1}
	case WeaponMelee:
		return Weapon{Type: t, Damage: 100, Ammo: 999, FireRate: 0.5}
	}
	return Weapon{Type: WeaponPistol, Damage: 50, Ammo: 12, FireRate: 0.5}
}

// CanFire reports whether the weapon is ready and has ammo
func (w Weapon) CanFire() bool {
	return w.FireTimer <= 0 && w.Ammo > 0
}

// Fire consumes one round and restarts the fire-rate timer
func (w *Weapon) Fire() {
	w.Ammo--
	w.FireTimer = w.FireRate
}

// Bullet is a live projectile
type Bullet struct {
	Damage   int
	Speed    float64
	Lifetime float64
}

// NewBullet builds a projectile carrying the given damage
func NewBullet(damage int) Bullet {
	return Bullet{
		Damage:   damage,
		Speed:    parameter.BulletSpeed,
		Lifetime: parameter.BulletLifetime,
	}
}

// BulletTrail is a short-lived visual marker left along a shot
type BulletTrail struct {
	Lifetime float64
}

// NewBulletTrail builds a trail segment with the standard lifetime
func NewBulletTrail() BulletTrail {
	return BulletTrail{Lifetime: parameter.TrailLifetime}
}
