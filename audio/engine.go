// Package audio synthesizes short procedural sound cues and plays
// them through the system speaker.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/nightgrid/systems"
)

const sampleRate = beep.SampleRate(44100)

// cueSpec describes how one cue sounds
type cueSpec struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

var cueSpecs = map[systems.Cue]cueSpec{
	systems.CueShoot:      {freq: 220, duration: 80 * time.Millisecond, wave: WaveNoise},
	systems.CueMelee:      {freq: 140, duration: 100 * time.Millisecond, wave: WaveSaw},
	systems.CueHit:        {freq: 330, duration: 60 * time.Millisecond, wave: WaveSquare},
	systems.CueEnemyDown:  {freq: 110, duration: 250 * time.Millisecond, wave: WaveSaw},
	systems.CuePlayerHurt: {freq: 90, duration: 200 * time.Millisecond, wave: WaveSquare},
}

// Engine plays combat cues. A disabled engine swallows everything, so
// the rest of the game never checks the audio state.
type Engine struct {
	enabled bool
	volume  float64
}

// NewEngine initializes the speaker when enabled. Volume is 0..1.
func NewEngine(enabled bool, volume float64) (*Engine, error) {
	e := &Engine{enabled: enabled, volume: volume}
	if !enabled {
		return e, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(20*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return e, nil
}

// Play implements systems.CuePlayer
func (e *Engine) Play(cue systems.Cue) {
	if e == nil || !e.enabled {
		return
	}
	spec, ok := cueSpecs[cue]
	if !ok {
		return
	}
	speaker.Play(e.shape(spec))
}

// shape builds the enveloped, volume-scaled streamer for a cue
func (e *Engine) shape(spec cueSpec) beep.Streamer {
	osc := NewOscillator(spec.freq, spec.duration, spec.wave, sampleRate)
	env := NewEnvelope(osc, spec.duration, 5*time.Millisecond, spec.duration/2, sampleRate)
	if e.volume >= 1 {
		return env
	}
	if e.volume <= 0 {
		return &effects.Volume{Streamer: env, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: env, Base: 2, Volume: math.Log2(e.volume)}
}
