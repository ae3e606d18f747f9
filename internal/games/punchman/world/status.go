package world

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned for a status change the game does not allow.
var ErrIllegalTransition = errors.New("world: illegal status transition")

// Status is the game-level state.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
	StatusWin
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "gameover"
	case StatusWin:
		return "win"
	default:
		return "unknown"
	}
}

// transitions lists the legal targets for each status.
var transitions = map[Status][]Status{
	StatusMenu:     {StatusPlaying},
	StatusPlaying:  {StatusPaused, StatusGameOver, StatusWin},
	StatusPaused:   {StatusPlaying},
	StatusGameOver: {StatusPlaying},
	StatusWin:      {StatusPlaying},
}

// StatusMachine holds the current status and enforces the transition table.
// The zero value starts in the menu.
type StatusMachine struct {
	current Status
}

// Current returns the current status.
func (m *StatusMachine) Current() Status {
	return m.current
}

// Can reports whether moving to the target status is legal.
func (m *StatusMachine) Can(to Status) bool {
	for _, s := range transitions[m.current] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves to the target status or returns ErrIllegalTransition.
func (m *StatusMachine) Transition(to Status) error {
	if !m.Can(to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, m.current, to)
	}
	m.current = to
	return nil
}
