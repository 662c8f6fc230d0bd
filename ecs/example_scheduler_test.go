package ecs_test

import (
	"fmt"

	"github.com/plus3/breakout/ecs"
)

type Transform struct {
	X, Y float32
}

type Projectile struct {
	Transform
	Speed float32
	TTL   int
}

type projectileWorld struct {
	Projectiles *ecs.Arena[Projectile]
}

func (w *projectileWorld) Despawn(e ecs.Entity) bool {
	return w.Projectiles.Remove(e)
}

type FlightSystem struct{}

func (FlightSystem) Execute(frame *ecs.Frame[*projectileWorld]) {
	for e, p := range frame.World.Projectiles.All() {
		p.X += p.Speed * float32(frame.DeltaTime)
		p.TTL--
		if p.TTL <= 0 {
			frame.Commands.Despawn(e)
		}
	}
}

// ExampleScheduler demonstrates a fixed-order game loop over a typed world.
// Systems run in registration order and despawns queued during the pass are
// applied once every system has finished.
func ExampleScheduler() {
	world := &projectileWorld{Projectiles: ecs.NewArena[Projectile](1)}
	world.Projectiles.Insert(Projectile{Speed: 10, TTL: 2})
	world.Projectiles.Insert(Projectile{Speed: 20, TTL: 3})

	scheduler := ecs.NewScheduler("fixed", world)
	scheduler.Register(FlightSystem{})

	for i := 0; i < 3; i++ {
		removed := scheduler.Once(1)
		fmt.Printf("pass %d: %d live, %d removed\n", i, world.Projectiles.Len(), removed)
	}

	stats := scheduler.GetStats()
	fmt.Printf("%s ran %d times\n", stats.Systems[0].Name, stats.Systems[0].ExecutionCount)
	// Output:
	// pass 0: 2 live, 0 removed
	// pass 1: 1 live, 1 removed
	// pass 2: 0 live, 1 removed
	// FlightSystem ran 3 times
}

// ExampleFixedTimestep shows how variable frame times map onto fixed ticks.
func ExampleFixedTimestep() {
	step := ecs.NewFixedTimestep(1.0/60, 5)

	for _, dt := range []float64{1.0 / 120, 1.0 / 120, 1.0 / 30} {
		fmt.Println(step.Advance(dt + 1e-9))
	}
	// Output:
	// 0
	// 1
	// 2
}
