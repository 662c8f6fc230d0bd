// Package audio synthesizes short sound effects for collision outcomes.
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/breakout/config"
	"github.com/plus3/breakout/game"
)

// ErrUnavailable is returned when no audio device can be opened.
var ErrUnavailable = errors.New("audio unavailable")

// Player mixes effect cues onto the speaker. A Player that was never opened,
// or is disabled, accepts cues and drops them.
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	enabled bool
	open    bool
	mixer   *beep.Mixer
	played  int
}

// NewPlayer creates a player from the audio configuration.
func NewPlayer(cfg config.AudioConfig) *Player {
	return &Player{
		rate:    beep.SampleRate(cfg.SampleRate),
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		mixer:   &beep.Mixer{},
	}
}

// Open initializes the speaker. Disabled players never touch the device.
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.open {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	speaker.Play(p.mixer)
	p.open = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled && p.open
}

// SetMuted toggles output without closing the device.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !muted
}

// Play queues a cue.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.open {
		return
	}
	s := c.Synthesize(p.rate, p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played++
}

// HandleEvents plays the cue for every event that has one.
func (p *Player) HandleEvents(events []game.Event) {
	for _, evt := range events {
		if c, ok := CueFor(evt); ok {
			p.Play(c)
		}
	}
}

// Played returns the number of cues sent to the speaker.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}
	speaker.Clear()
	p.open = false
}
