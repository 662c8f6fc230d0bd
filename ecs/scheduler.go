package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	Name            string
	SystemCount     int
	Passes          uint64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs registered systems in registration order against one world.
// Deferred commands issued by the systems are flushed once at the end of each pass.
type Scheduler[W Despawner] struct {
	name        string
	world       W
	commands    *Commands
	systems     []System[W]
	systemStats []*systemStatsInternal
	passes      uint64
}

// NewScheduler creates a new scheduler for the given world.
func NewScheduler[W Despawner](name string, world W) *Scheduler[W] {
	return &Scheduler[W]{
		name:     name,
		world:    world,
		commands: NewCommands(),
		systems:  make([]System[W], 0),
	}
}

// Register appends a system. The system's type name is used in statistics.
func (s *Scheduler[W]) Register(system System[W]) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	s.RegisterNamed(systemType.Name(), system)
}

// RegisterNamed appends a system under an explicit name.
func (s *Scheduler[W]) RegisterNamed(name string, system System[W]) {
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time.
// It returns the number of entities removed by the flushed commands.
func (s *Scheduler[W]) Once(dt float64) int {
	frame := newFrame(dt, s.passes, s.world, s.commands)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.passes++
	return s.commands.Flush(s.world)
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
// Each pass receives the fixed interval as its delta time.
func (s *Scheduler[W]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Once(interval.Seconds())
		}
	}
}

// Passes returns the number of completed passes.
func (s *Scheduler[W]) Passes() uint64 {
	return s.passes
}

// GetStats returns statistics about system execution.
func (s *Scheduler[W]) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		Name:        s.name,
		SystemCount: len(s.systems),
		Passes:      s.passes,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
