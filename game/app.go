package game

import "github.com/plus3/breakout/ecs"

// App drives a World with a fixed-timestep simulation schedule and a
// once-per-frame presentation schedule.
type App struct {
	World *World

	fixed *ecs.Scheduler[*World]
	frame *ecs.Scheduler[*World]
	step  *ecs.FixedTimestep
}

// NewApp creates the world and registers every system in execution order.
func NewApp(settings Settings) *App {
	world := NewWorld(settings)

	fixed := ecs.NewScheduler("fixed", world)
	fixed.Register(PaddleMovementSystem{})
	fixed.Register(CollisionSystem{})
	fixed.Register(BallMovementSystem{})
	fixed.Register(BrickMovementSystem{})

	frame := ecs.NewScheduler("frame", world)
	frame.Register(ExitSystem{})
	frame.Register(RestartSystem{})
	frame.Register(ScoreboardSystem{})
	frame.Register(BonusTextSystem{})
	frame.Register(BackgroundClockSystem{})

	return &App{
		World: world,
		fixed: fixed,
		frame: frame,
		step:  ecs.NewFixedTimestep(TimeStep, settings.MaxTicksPerFrame),
	}
}

// Update advances the game by one rendered frame of dt seconds and returns
// the events produced during it.
func (a *App) Update(dt float64, input Input) []Event {
	a.World.Input = input

	ticks := a.step.Advance(dt)
	for i := 0; i < ticks; i++ {
		a.fixed.Once(a.step.Step)
	}
	a.frame.Once(dt)

	return a.World.Events.Drain()
}

// Tick runs exactly one fixed tick followed by one frame pass, independent of
// wall-clock time. Headless runs use it for deterministic stepping.
func (a *App) Tick(input Input) []Event {
	a.World.Input = input
	a.fixed.Once(TimeStep)
	a.frame.Once(TimeStep)
	return a.World.Events.Drain()
}

// AddFrameSystem appends a system to the per-frame schedule.
func (a *App) AddFrameSystem(system ecs.System[*World]) {
	a.frame.Register(system)
}

// Quit reports whether a quit was requested.
func (a *App) Quit() bool {
	return a.World.QuitRequested
}

// Ticks returns the number of fixed ticks simulated so far.
func (a *App) Ticks() uint64 {
	return a.fixed.Passes()
}

// Stats returns scheduler statistics for the fixed and frame schedules.
func (a *App) Stats() []*ecs.SchedulerStats {
	return []*ecs.SchedulerStats{a.fixed.GetStats(), a.frame.GetStats()}
}
