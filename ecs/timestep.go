package ecs

// FixedTimestep converts variable frame deltas into a whole number of fixed ticks.
type FixedTimestep struct {
	Step        float64
	MaxPerFrame int

	accumulator float64
	ticks       uint64
}

// NewFixedTimestep returns a timestep producing ticks of the given length in seconds.
// At most maxPerFrame ticks are produced per Advance call; excess time is discarded.
func NewFixedTimestep(step float64, maxPerFrame int) *FixedTimestep {
	if maxPerFrame <= 0 {
		maxPerFrame = 1
	}
	return &FixedTimestep{
		Step:        step,
		MaxPerFrame: maxPerFrame,
	}
}

// Advance adds dt seconds and returns how many fixed ticks are now due.
func (f *FixedTimestep) Advance(dt float64) int {
	if dt > 0 {
		f.accumulator += dt
	}

	n := 0
	for f.accumulator >= f.Step && n < f.MaxPerFrame {
		f.accumulator -= f.Step
		n++
	}
	if n == f.MaxPerFrame && f.accumulator >= f.Step {
		f.accumulator = 0
	}

	f.ticks += uint64(n)
	return n
}

// Overstep returns the fraction of a tick accumulated but not yet consumed.
func (f *FixedTimestep) Overstep() float64 {
	return f.accumulator / f.Step
}

// Ticks returns the total number of ticks produced.
func (f *FixedTimestep) Ticks() uint64 {
	return f.ticks
}

// Reset clears accumulated time and the tick counter.
func (f *FixedTimestep) Reset() {
	f.accumulator = 0
	f.ticks = 0
}
