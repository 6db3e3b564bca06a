package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow, h, a - move piece left
	ActionRight              // Right arrow, l, d - move piece right
	ActionSoftDrop           // Down arrow, j, s - drop one row now
	ActionRotate             // Up arrow, k, w, x - rotate clockwise
	ActionRotateBack         // z - rotate counter-clockwise
	ActionStart              // Enter - start or restart a session
	ActionPause              // P, Escape - pause/unpause game
	ActionQuit               // Q, Ctrl+C - exit
	ActionReleaseDrop        // synthesized by the platform when soft drop stops
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionRotateBack:
		return "RotateBack"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionReleaseDrop:
		return "ReleaseDrop"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
// Actions are kept in arrival order because the engine applies intents
// as sequential transitions.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the actions of this frame in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{actions: make([]Action, len(f.actions))}
	copy(clone.actions, f.actions)
	return clone
}
