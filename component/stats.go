package component

// Health tracks hit points, capped at a maximum
type Health struct {
	Current, Max int
}

// NewHealth builds a Health at full hit points
func NewHealth(max int) Health {
	return Health{Current: max, Max: max}
}

// Damage reduces current health, clamping at zero
func (h *Health) Damage(amount int) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// Heal raises current health, clamping at the maximum
func (h *Health) Heal(amount int) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Dead reports whether health is exhausted
func (h Health) Dead() bool {
	return h.Current <= 0
}

// Speed is maximum movement speed in units/sec
type Speed struct {
	Value float64
}

// Rotation is a facing angle in radians
type Rotation struct {
	Angle float64
}

// Radius is a circular collision extent
type Radius struct {
	Value float64
}

// Player marks the player-controlled entity
type Player struct{}

// Enemy marks a hostile entity
type Enemy struct{}
