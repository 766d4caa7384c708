package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorDurationAndBounds(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, 44100)
		samples := drain(osc)

		want := beep.SampleRate(44100).N(50 * time.Millisecond)
		if len(samples) != want {
			t.Errorf("wave %d: got %d samples, want %d", wave, len(samples), want)
		}
		for _, s := range samples {
			if s[0] < -1.001 || s[0] > 1.001 {
				t.Fatalf("wave %d: sample %v out of range", wave, s[0])
			}
		}
	}
}

func TestOscillatorStopsWhenDone(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, 44100)
	drain(osc)
	buf := make([][2]float64, 16)
	if n, ok := osc.Stream(buf); n != 0 || ok {
		t.Errorf("exhausted oscillator should stream nothing, got n=%d ok=%v", n, ok)
	}
}

func TestEnvelopeRampsEnds(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSquare, 44100)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, 44100)
	samples := drain(env)
	if len(samples) == 0 {
		t.Fatal("envelope produced no samples")
	}

	// Square waves sit at full scale, so the first and last samples
	// must be attenuated by the ramps
	first := samples[0][0]
	last := samples[len(samples)-1][0]
	if first > 0.01 || first < -0.01 {
		t.Errorf("attack should start near silence, got %v", first)
	}
	if last > 0.1 || last < -0.1 {
		t.Errorf("release should end near silence, got %v", last)
	}
}

func TestDisabledEnginePlayIsNoop(t *testing.T) {
	e, err := NewEngine(false, 0.5)
	if err != nil {
		t.Fatalf("disabled engine should not touch the speaker: %v", err)
	}
	// Must not panic without an initialized speaker
	e.Play(0)

	var nilEngine *Engine
	nilEngine.Play(0)
}
