package component

// FireIntent marks an entity that wants to fire its weapon this frame.
// Consumed by the combat system.
type FireIntent struct{}

// MeleeIntent marks an entity that wants to swing this frame
type MeleeIntent struct{}
