// Package input translates terminal key events into per-frame state
// snapshots, keeping the simulation decoupled from tcell.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nightgrid/vmath"
)

// State is one frame's worth of player intent
type State struct {
	// Move is the raw movement axis input, each component in -1..1
	Move vmath.Vec2
	// Turn rotates the facing: negative counterclockwise, positive
	// clockwise
	Turn  float64
	Fire  bool
	Melee bool
	// Weapon is the selected weapon slot 1-4, or 0 for no change
	Weapon  int
	Restart bool
	Quit    bool
}

// Keyboard accumulates key events between frames. Terminals deliver
// presses only, never releases, so each press contributes to the frame
// in which it arrived.
type Keyboard struct {
	pending State
}

// NewKeyboard creates an empty accumulator
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// HandleKey folds one tcell key event into the pending state
func (k *Keyboard) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		k.pending.Move.Y = -1
	case tcell.KeyDown:
		k.pending.Move.Y = 1
	case tcell.KeyLeft:
		k.pending.Turn = -1
	case tcell.KeyRight:
		k.pending.Turn = 1
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.pending.Quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			k.pending.Move.Y = -1
		case 's', 'S':
			k.pending.Move.Y = 1
		case 'a', 'A':
			k.pending.Move.X = -1
		case 'd', 'D':
			k.pending.Move.X = 1
		case 'q', 'Q':
			k.pending.Turn = -1
		case 'e', 'E':
			k.pending.Turn = 1
		case ' ':
			k.pending.Fire = true
		case 'f', 'F':
			k.pending.Melee = true
		case '1', '2', '3', '4':
			k.pending.Weapon = int(ev.Rune() - '0')
		case 'r', 'R':
			k.pending.Restart = true
		}
	}
}

// Drain returns the accumulated state and resets for the next frame
func (k *Keyboard) Drain() State {
	st := k.pending
	k.pending = State{}
	return st
}
