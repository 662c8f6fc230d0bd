package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/plus3/breakout/game"
)

// Sound identifies one effect.
type Sound int

const (
	SoundWall Sound = iota
	SoundPaddle
	SoundBrick
	SoundPenalty
	SoundComplete
)

func (s Sound) String() string {
	switch s {
	case SoundWall:
		return "wall"
	case SoundPaddle:
		return "paddle"
	case SoundBrick:
		return "brick"
	case SoundPenalty:
		return "penalty"
	case SoundComplete:
		return "complete"
	}
	return "unknown"
}

// Cue is a sound plus the streak that modulates its pitch.
type Cue struct {
	Sound  Sound
	Streak int
}

// CueFor maps a collision event to the sound it should trigger.
func CueFor(evt game.Event) (Cue, bool) {
	switch evt.Kind {
	case game.EventWallBounce:
		return Cue{Sound: SoundWall}, true
	case game.EventPaddleBounce:
		return Cue{Sound: SoundPaddle}, true
	case game.EventBrickHit:
		return Cue{Sound: SoundBrick, Streak: evt.Streak}, true
	case game.EventPenalty:
		return Cue{Sound: SoundPenalty}, true
	case game.EventLevelComplete:
		return Cue{Sound: SoundComplete}, true
	}
	return Cue{}, false
}

// Duration returns how long the cue plays.
func (c Cue) Duration() time.Duration {
	switch c.Sound {
	case SoundWall:
		return 40 * time.Millisecond
	case SoundPaddle:
		return 80 * time.Millisecond
	case SoundBrick:
		return 90 * time.Millisecond
	case SoundPenalty:
		return 250 * time.Millisecond
	case SoundComplete:
		return 4 * 120 * time.Millisecond
	}
	return 0
}

// Synthesize renders the cue at the given sample rate and volume.
func (c Cue) Synthesize(rate beep.SampleRate, volume float64) beep.Streamer {
	const attack = 5 * time.Millisecond
	d := c.Duration()

	var s beep.Streamer
	switch c.Sound {
	case SoundWall:
		s = Decay(Tone(220, d, Triangle, rate), d, attack, rate)
	case SoundPaddle:
		s = Decay(Tone(330, d, Square, rate), d, attack, rate)
	case SoundBrick:
		// Each step of a streak climbs a semitone from A5.
		freq := 880 * math.Pow(2, float64(max(c.Streak-1, 0))/12)
		s = beep.Mix(
			gain(Decay(Tone(freq, d, Sine, rate), d, attack, rate), 0.7),
			gain(Decay(Tone(2*freq, d, Sine, rate), d/2, attack, rate), 0.3),
		)
	case SoundPenalty:
		s = beep.Seq(
			Decay(Tone(196, d/2, Square, rate), d/2, attack, rate),
			Decay(Tone(147, d/2, Square, rate), d/2, attack, rate),
		)
	case SoundComplete:
		step := d / 4
		notes := []float64{523.25, 659.25, 783.99, 1046.5}
		parts := make([]beep.Streamer, len(notes))
		for i, f := range notes {
			parts[i] = Decay(Tone(f, step, Sine, rate), step, attack, rate)
		}
		s = beep.Seq(parts...)
	default:
		s = beep.Silence(0)
	}
	return gain(s, volume)
}
