package ecs

// Frame is handed to every system during one scheduler pass.
type Frame[W any] struct {
	DeltaTime float64
	Tick      uint64
	World     W
	Commands  *Commands
}

func newFrame[W any](dt float64, tick uint64, world W, commands *Commands) *Frame[W] {
	return &Frame[W]{
		DeltaTime: dt,
		Tick:      tick,
		World:     world,
		Commands:  commands,
	}
}
