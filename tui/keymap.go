package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/breakout/game"
)

// DefaultHoldTicks is how long a direction stays held after its last key
// press. Terminals report key repeats but never key releases.
const DefaultHoldTicks = 9

// Action is a key mapped to a game intent.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionRestart
	ActionQuit
	ActionAutopilot
)

// MapKey translates a key message to an action.
func MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return ActionQuit
	case "left", "a", "h":
		return ActionLeft
	case "right", "d", "l":
		return ActionRight
	case "r":
		return ActionRestart
	case "p":
		return ActionAutopilot
	}
	return ActionNone
}

// KeyState turns key presses into held directions.
type KeyState struct {
	holdTicks int
	left      int
	right     int
	restart   bool
	quit      bool
}

func NewKeyState(holdTicks int) *KeyState {
	if holdTicks < 1 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyState{holdTicks: holdTicks}
}

// Press records an action. A direction press releases the opposite direction.
func (k *KeyState) Press(a Action) {
	switch a {
	case ActionLeft:
		k.left = k.holdTicks
		k.right = 0
	case ActionRight:
		k.right = k.holdTicks
		k.left = 0
	case ActionRestart:
		k.restart = true
	case ActionQuit:
		k.quit = true
	}
}

// Input returns the input for the next tick and ages the held keys.
// Restart and quit are reported once.
func (k *KeyState) Input() game.Input {
	in := game.Input{
		Left:    k.left > 0,
		Right:   k.right > 0,
		Restart: k.restart,
		Quit:    k.quit,
	}
	k.left = max(k.left-1, 0)
	k.right = max(k.right-1, 0)
	k.restart = false
	k.quit = false
	return in
}
