package main

import (
	"io"
	"runtime"
	"text/template"
	"time"
)

// Report describes a headless run for the --report flag.
type Report struct {
	Seed    uint64
	Bricks  int
	Summary summary

	TotalTime     time.Duration
	TickTime      Stats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// Stats summarizes duration samples.
type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]
	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Breakout+ Simulation Report

## Run
- **Seed:** {{.Seed}}
- **Bricks per level:** {{.Bricks}}
- **Ticks:** {{.Summary.Ticks}}
- **Wall time:** {{.TotalTime}}

## Game
- **Score:** {{.Summary.Score}}
- **Remaining bricks:** {{.Summary.RemainBricks}}
- **Levels completed:** {{.Summary.Levels}}
- **Events:** {{.Summary.Events}}

## Tick Time
- **Avg:** {{.TickTime.Avg}}
- **Min:** {{.TickTime.Min}}
- **Max:** {{.TickTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc: {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:      {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
}).Parse(reportTemplate))

func (r *Report) Generate(w io.Writer) error {
	return reportTmpl.Execute(w, r)
}
