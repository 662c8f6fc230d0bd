package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/breakout/ecs"
	"github.com/plus3/breakout/render"
)

// PerformanceStats keeps a ring of recent frame times in milliseconds.
type PerformanceStats struct {
	history []float32
	index   int
	filled  int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{history: make([]float32, historyFrames)}
}

// Record adds one frame of dt seconds.
func (ps *PerformanceStats) Record(dt float64) {
	ps.history[ps.index] = float32(dt * 1000)
	ps.index = (ps.index + 1) % len(ps.history)
	ps.filled = min(ps.filled+1, len(ps.history))
}

// Average returns the mean recorded frame time in milliseconds.
func (ps *PerformanceStats) Average() float32 {
	if ps.filled == 0 {
		return 0
	}
	var sum float32
	for _, ft := range ps.history[:ps.filled] {
		sum += ft
	}
	return sum / float32(ps.filled)
}

func (ps *PerformanceStats) Render(schedulers []*ecs.SchedulerStats, frame render.FrameStats) {
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.Average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))
	imgui.Text(fmt.Sprintf("Phase items: %d  Draw calls: %d  Pipelines: %d", frame.Items, frame.DrawCalls, frame.Pipelines))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.history[0], int32(len(ps.history)))

	for _, s := range schedulers {
		if !imgui.TreeNodeStr(fmt.Sprintf("%s (%d passes)", s.Name, s.Passes)) {
			continue
		}
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV(s.Name+"Systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()
			for _, sys := range s.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.Round(time.Microsecond).String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.Round(time.Microsecond).String())
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall-clock time between frames.
type FrameTimer struct {
	last time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{last: time.Now()}
}

func (ft *FrameTimer) Delta() float64 {
	now := time.Now()
	delta := now.Sub(ft.last).Seconds()
	ft.last = now
	return delta
}
