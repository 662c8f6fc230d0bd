package ecs

// System represents a behavior that advances the world by one scheduler pass.
// Systems may keep their own state between passes but must not hold record
// pointers obtained from an arena across passes.
type System[W any] interface {
	Execute(frame *Frame[W])
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc[W any] func(frame *Frame[W])

// Execute calls f(frame).
func (f SystemFunc[W]) Execute(frame *Frame[W]) {
	f(frame)
}
