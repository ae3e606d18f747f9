package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // A, Left arrow - held
	ActionMoveRight        // D, Right arrow - held
	ActionJump             // Space, W, Up arrow - held
	ActionAttack           // F
	ActionInteract         // E
	ActionPause            // P, Escape - toggle
	ActionPlay             // Enter - start from the menu, resume, restart after the game ends
	ActionRestart          // R - reload the current level
	ActionDebug            // V - toggle collision boxes
	ActionMute             // M - toggle music
	ActionLevel1           // 1
	ActionLevel2           // 2
	ActionQuit             // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionInteract:
		return "Interact"
	case ActionPause:
		return "Pause"
	case ActionPlay:
		return "Play"
	case ActionRestart:
		return "Restart"
	case ActionDebug:
		return "Debug"
	case ActionMute:
		return "Mute"
	case ActionLevel1:
		return "Level1"
	case ActionLevel2:
		return "Level2"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputEvent is one edge of an action: a press or a release.
type InputEvent struct {
	Action   Action
	Released bool
}

// InputFrame holds the input edges collected during one simulation tick,
// in the order they arrived. Press and release of the same key within one
// tick are both kept so a tap is never lost.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press records the start of an action.
func (f *InputFrame) Press(a Action) {
	f.Events = append(f.Events, InputEvent{Action: a})
}

// Release records the end of a held action.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, InputEvent{Action: a, Released: true})
}

// Has returns true if the action was pressed during this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e.Action == a && !e.Released {
			return true
		}
	}
	return false
}

// Empty reports whether no input arrived during this frame.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	if f.Events == nil {
		return InputFrame{}
	}
	events := make([]InputEvent, len(f.Events))
	copy(events, f.Events)
	return InputFrame{Events: events}
}
