package core

// Action is a semantic game command, abstracted from physical key presses.
// The platform maps keyboard/SSH input to actions; the game never sees keys.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump / flip gravity in flip modes
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state sampled by one simulation tick.
//
// Actions are edge-triggered: set when a key event arrived since the last
// tick, cleared after the tick consumes them. A press and release that both
// land between two ticks never coincide with a sampled tick and are lost;
// that is accepted behavior. Held is the "currently held" set, maintained by
// the platform and sampled as-is (used for glide-style abilities).
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Press marks an action as triggered for this frame.
func (f *InputFrame) Press(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold records whether an action is currently held down.
func (f *InputFrame) Hold(a Action, held bool) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = held
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// IsHeld reports whether the given action is currently held down.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets the edge-triggered actions for the next frame.
// The held set is platform-owned and survives across ticks.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
