package world

// Cue is a sound-worthy event produced during a tick.
type Cue int

const (
	CueJump Cue = iota
	CueAttack
	CueHit
	CueHurt
	CueCoin
	CueGem
	CuePortal
	CueSwitch
	CueDeath
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueAttack:
		return "attack"
	case CueHit:
		return "hit"
	case CueHurt:
		return "hurt"
	case CueCoin:
		return "coin"
	case CueGem:
		return "gem"
	case CuePortal:
		return "portal"
	case CueSwitch:
		return "switch"
	case CueDeath:
		return "death"
	default:
		return "unknown"
	}
}

func (w *World) emit(c Cue) {
	w.cues = append(w.cues, c)
}

// DrainCues returns the cues emitted since the last call, in order, and
// empties the buffer.
func (w *World) DrainCues() []Cue {
	if len(w.cues) == 0 {
		return nil
	}
	out := w.cues
	w.cues = nil
	return out
}
