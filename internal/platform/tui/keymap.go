package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-punchman/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Attack     key.Binding
	Interact   key.Binding
	Pause      key.Binding
	Play       key.Binding
	Restart    key.Binding
	Debug      key.Binding
	Mute       key.Binding
	Level1     key.Binding
	Level2     key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Attack, k.Interact, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Attack, k.Interact},
		{k.Play, k.Pause, k.Restart, k.Level1, k.Level2},
		{k.Debug, k.Mute, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Attack: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "punch"),
		),
		Interact: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "use"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Debug: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "debug"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Level1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "level 1"),
		),
		Level2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "level 2"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys    KeyMap
	actions []boundAction
}

type boundAction struct {
	binding *key.Binding
	action  core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWith(DefaultKeyMap())
}

// NewKeyMapperWith creates a key mapper over the given bindings.
func NewKeyMapperWith(keys KeyMap) *KeyMapper {
	km := &KeyMapper{keys: keys}
	k := &km.keys
	km.actions = []boundAction{
		{&k.Left, core.ActionMoveLeft},
		{&k.Right, core.ActionMoveRight},
		{&k.Jump, core.ActionJump},
		{&k.Attack, core.ActionAttack},
		{&k.Interact, core.ActionInteract},
		{&k.Pause, core.ActionPause},
		{&k.Play, core.ActionPlay},
		{&k.Restart, core.ActionRestart},
		{&k.Debug, core.ActionDebug},
		{&k.Mute, core.ActionMute},
		{&k.Level1, core.ActionLevel1},
		{&k.Level2, core.ActionLevel2},
		{&k.Quit, core.ActionQuit},
	}
	return km
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.actions {
		if key.Matches(msg, *b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// Held reports whether an action stays active until released. The rest are
// one-shot presses.
func Held(a core.Action) bool {
	switch a {
	case core.ActionMoveLeft, core.ActionMoveRight, core.ActionJump:
		return true
	}
	return false
}

// Terminals deliver key repeats but no key-up events. A held action is
// released when its repeats stop arriving.
const (
	// DefaultHoldDelay covers the pause before the terminal's auto-repeat
	// kicks in.
	DefaultHoldDelay = 550 * time.Millisecond
	// DefaultRepeatGap is the longest expected gap between repeats.
	DefaultRepeatGap = 120 * time.Millisecond
)

// holdTracker turns repeated key presses into press and release edges.
type holdTracker struct {
	delay    time.Duration
	gap      time.Duration
	deadline map[core.Action]time.Time
}

func newHoldTracker(delay, gap time.Duration) *holdTracker {
	return &holdTracker{
		delay:    delay,
		gap:      gap,
		deadline: make(map[core.Action]time.Time),
	}
}

// heldOrder fixes the order in which simultaneous releases are reported.
var heldOrder = []core.Action{core.ActionMoveLeft, core.ActionMoveRight, core.ActionJump}

// press records a key press at now and writes the resulting edges to the
// frame. Repeats of an already held action only extend the hold. Moving in
// one direction releases the other.
func (h *holdTracker) press(a core.Action, now time.Time, frame *core.InputFrame) {
	if !Held(a) {
		frame.Press(a)
		return
	}

	if opposite := oppositeOf(a); opposite != core.ActionNone {
		if _, ok := h.deadline[opposite]; ok {
			delete(h.deadline, opposite)
			frame.Release(opposite)
		}
	}

	if _, ok := h.deadline[a]; ok {
		h.deadline[a] = now.Add(h.gap)
		return
	}
	h.deadline[a] = now.Add(h.delay)
	frame.Press(a)
}

// expire releases every hold whose deadline has passed.
func (h *holdTracker) expire(now time.Time, frame *core.InputFrame) {
	for _, a := range heldOrder {
		if d, ok := h.deadline[a]; ok && !now.Before(d) {
			delete(h.deadline, a)
			frame.Release(a)
		}
	}
}

// releaseAll releases every held action.
func (h *holdTracker) releaseAll(frame *core.InputFrame) {
	for _, a := range heldOrder {
		if _, ok := h.deadline[a]; ok {
			delete(h.deadline, a)
			frame.Release(a)
		}
	}
}

// holding reports whether an action is currently held.
func (h *holdTracker) holding(a core.Action) bool {
	_, ok := h.deadline[a]
	return ok
}

func oppositeOf(a core.Action) core.Action {
	switch a {
	case core.ActionMoveLeft:
		return core.ActionMoveRight
	case core.ActionMoveRight:
		return core.ActionMoveLeft
	}
	return core.ActionNone
}
