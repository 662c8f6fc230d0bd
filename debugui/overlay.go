package debugui

import (
	"github.com/plus3/breakout/game"
	"github.com/plus3/breakout/render"
)

// Overlay is the set of debug windows drawn over the game.
type Overlay struct {
	Input       InputState
	Browser     *EntityBrowser
	Inspector   *Inspector
	Performance *PerformanceStats

	timer *FrameTimer
}

func NewOverlay() *Overlay {
	return &Overlay{
		Browser:     NewEntityBrowser(50),
		Inspector:   NewInspector(),
		Performance: NewPerformanceStats(120),
		timer:       NewFrameTimer(),
	}
}

// Install adds the overlay to the app's frame schedule. frameStats reports the
// renderer's statistics for the previous frame.
func (o *Overlay) Install(app *game.App, frameStats func() render.FrameStats) {
	app.AddFrameSystem(&ImguiSystem[*game.World]{
		Input: &o.Input,
		Items: []ImguiItem{
			{Render: func() {
				o.Performance.Record(o.timer.Delta())
				o.Performance.Render(app.Stats(), frameStats())
			}},
			{Render: func() { o.Browser.Render(app.World) }},
			{Render: func() { o.Inspector.Render(app.World, o.Browser.Selected()) }},
		},
	})
}
