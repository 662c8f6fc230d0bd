package render

import (
	"slices"

	"github.com/plus3/breakout/ecs"
)

// DrawFunctionID indexes a registered draw function.
type DrawFunctionID int

// PhaseItem is one queued draw.
type PhaseItem struct {
	Entity       ecs.Entity
	SortKey      float32
	DrawFunction DrawFunctionID
	Pipeline     PipelineID
}

// Phase collects the items of one view and sorts them back to front.
type Phase struct {
	items []PhaseItem
}

func (p *Phase) Add(item PhaseItem) {
	p.items = append(p.items, item)
}

// Sort orders items by ascending z. Items with equal z keep queue order.
func (p *Phase) Sort() {
	slices.SortStableFunc(p.items, func(a, b PhaseItem) int {
		switch {
		case a.SortKey < b.SortKey:
			return -1
		case a.SortKey > b.SortKey:
			return 1
		}
		return 0
	})
}

func (p *Phase) Items() []PhaseItem {
	return p.items
}

func (p *Phase) Len() int {
	return len(p.items)
}

func (p *Phase) Clear() {
	p.items = p.items[:0]
}

// DrawFunction replays one phase item onto a pass.
type DrawFunction interface {
	Draw(pass *TrackedPass, item PhaseItem) error
}

// DrawFunctions is the registry of draw functions for a phase.
type DrawFunctions struct {
	fns   []DrawFunction
	names []string
}

// Add registers fn and returns its id.
func (d *DrawFunctions) Add(name string, fn DrawFunction) DrawFunctionID {
	d.fns = append(d.fns, fn)
	d.names = append(d.names, name)
	return DrawFunctionID(len(d.fns) - 1)
}

func (d *DrawFunctions) Get(id DrawFunctionID) (DrawFunction, bool) {
	if id < 0 || int(id) >= len(d.fns) {
		return nil, false
	}
	return d.fns[id], true
}

func (d *DrawFunctions) Name(id DrawFunctionID) string {
	if id < 0 || int(id) >= len(d.names) {
		return ""
	}
	return d.names[id]
}
