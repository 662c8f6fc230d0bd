package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Triangle
)

type tone struct {
	freq   float64
	phase  float64
	length int
	pos    int
	wave   Wave
	rate   beep.SampleRate
}

// Tone returns a streamer producing a fixed-frequency wave for the given duration.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			return i, true
		}

		var v float64
		switch t.wave {
		case Sine:
			v = math.Sin(2 * math.Pi * t.phase)
		case Square:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case Triangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		}
		samples[i] = [2]float64{v, v}

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// decay fades a streamer out linearly after a short attack.
type decay struct {
	s      beep.Streamer
	attack int
	length int
	pos    int
}

// Decay wraps s with a linear attack of the given length and a linear fade to
// silence at the end of d.
func Decay(s beep.Streamer, d, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{s: s, attack: rate.N(attack), length: rate.N(d)}
}

func (e *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 0.0
		switch {
		case e.pos >= e.length:
		case e.pos < e.attack:
			gain = float64(e.pos) / float64(e.attack)
		default:
			gain = float64(e.length-e.pos) / float64(e.length-e.attack)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *decay) Err() error { return e.s.Err() }

// gain scales a streamer's amplitude; zero or negative silences it.
func gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}
