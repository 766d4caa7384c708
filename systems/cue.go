package systems

// Cue identifies a game sound effect
type Cue int

const (
	CueShoot Cue = iota
	CueMelee
	CueHit
	CueEnemyDown
	CuePlayerHurt
)

// CuePlayer receives sound cues from the combat systems. A nil player
// silences them.
type CuePlayer interface {
	Play(Cue)
}

func playCue(p CuePlayer, c Cue) {
	if p != nil {
		p.Play(c)
	}
}
