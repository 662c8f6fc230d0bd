// Package debugui provides a Dear ImGui overlay for the game: frame timings,
// scheduler statistics, an entity browser and a record inspector.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/breakout/ecs"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates the input state and defers every item's render function
// until the scheduler flushes its commands.
type ImguiSystem[W any] struct {
	Items []ImguiItem
	Input *InputState
}

func (s *ImguiSystem[W]) Execute(frame *ecs.Frame[W]) {
	if s.Input != nil {
		io := imgui.CurrentIO()
		s.Input.WantCaptureMouse = io.WantCaptureMouse()
		s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, item := range s.Items {
		frame.Commands.Defer(item.Render)
	}
}
