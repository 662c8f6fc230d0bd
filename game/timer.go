package game

// Timer is an optional decaying animation value. The zero Timer is unarmed.
type Timer struct {
	value float32
	armed bool
}

// Arm sets the timer to v.
func (t *Timer) Arm(v float32) {
	t.value = v
	t.armed = true
}

// Clear disarms the timer.
func (t *Timer) Clear() {
	t.value = 0
	t.armed = false
}

// Get returns the current value and whether the timer is armed.
func (t Timer) Get() (float32, bool) {
	return t.value, t.armed
}

func (t Timer) Armed() bool {
	return t.armed
}

func (t Timer) Value() float32 {
	return t.value
}

// Decay multiplies the value by factor while it is above floor and clears the
// timer otherwise. It reports whether the timer is still armed.
func (t *Timer) Decay(factor, floor float32) bool {
	if !t.armed {
		return false
	}
	if floor < t.value {
		t.value *= factor
		return true
	}
	t.Clear()
	return false
}
