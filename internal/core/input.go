package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionFireJ             // J - fire the "j" choice
	ActionFireLy            // L - fire the "ly" choice
	ActionRepeat            // Space - fire the last choice again
	ActionCycleLeft         // Left arrow - move the target lock backwards
	ActionCycleRight        // Right arrow - move the target lock forwards
	ActionTapLeft           // Mouse click on the left half of the screen
	ActionTapRight          // Mouse click on the right half of the screen
	ActionUp                // Up, W, K - menu navigation
	ActionDown              // Down, S, J - menu navigation
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionRestart           // R key - restart game after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFireJ:
		return "FireJ"
	case ActionFireLy:
		return "FireLy"
	case ActionRepeat:
		return "Repeat"
	case ActionCycleLeft:
		return "CycleLeft"
	case ActionCycleRight:
		return "CycleRight"
	case ActionTapLeft:
		return "TapLeft"
	case ActionTapRight:
		return "TapRight"
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

// InputFrame collects the actions triggered between two simulation ticks.
// Actions keep their arrival order, and pressing a key twice before the next
// tick yields two entries: every shot counts.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make([]Action, 0, 4),
	}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Len returns the number of recorded actions.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
