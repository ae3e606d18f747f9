package world

// Intent is a discrete player command produced by the input layer.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveLeftStart
	IntentMoveLeftStop
	IntentMoveRightStart
	IntentMoveRightStop
	IntentJumpStart
	IntentJumpStop
	IntentAttack
	IntentInteract
	IntentPause
	IntentPlay
	IntentDebug
	IntentMute
	IntentRestart
	IntentLevel1
	IntentLevel2
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentMoveLeftStart:
		return "move-left-start"
	case IntentMoveLeftStop:
		return "move-left-stop"
	case IntentMoveRightStart:
		return "move-right-start"
	case IntentMoveRightStop:
		return "move-right-stop"
	case IntentJumpStart:
		return "jump-start"
	case IntentJumpStop:
		return "jump-stop"
	case IntentAttack:
		return "attack"
	case IntentInteract:
		return "interact"
	case IntentPause:
		return "pause"
	case IntentPlay:
		return "play"
	case IntentDebug:
		return "debug"
	case IntentMute:
		return "mute"
	case IntentRestart:
		return "restart"
	case IntentLevel1:
		return "level-1"
	case IntentLevel2:
		return "level-2"
	default:
		return "unknown"
	}
}

// Apply handles one intent. Only level loading can fail; the world is
// unchanged when it does.
//
// While paused only pause, play, debug and mute are honoured. Gameplay
// intents are ignored outside of play.
func (w *World) Apply(in Intent) error {
	switch in {
	case IntentPause:
		switch w.status.Current() {
		case StatusPlaying:
			return w.status.Transition(StatusPaused)
		case StatusPaused:
			return w.status.Transition(StatusPlaying)
		}
		return nil
	case IntentPlay:
		switch w.status.Current() {
		case StatusMenu, StatusPaused:
			return w.status.Transition(StatusPlaying)
		}
		return nil
	case IntentDebug:
		w.debug = !w.debug
		return nil
	case IntentMute:
		w.muted = !w.muted
		return nil
	}

	switch in {
	case IntentRestart:
		return w.Restart()
	case IntentLevel1:
		return w.SelectLevel(0)
	case IntentLevel2:
		return w.SelectLevel(1)
	}

	if w.status.Current() != StatusPlaying {
		return nil
	}

	p := w.player
	switch in {
	case IntentMoveLeftStart:
		if p.Attacking {
			return nil
		}
		if p.FacingRight() {
			p.Flip()
		}
		p.MovingLeft = true
		p.MovingRight = false
	case IntentMoveLeftStop:
		if p.MovingLeft {
			p.MovingLeft = false
			p.VX = 0
		}
	case IntentMoveRightStart:
		if p.Attacking {
			return nil
		}
		if !p.FacingRight() {
			p.Flip()
		}
		p.MovingRight = true
		p.MovingLeft = false
	case IntentMoveRightStop:
		if p.MovingRight {
			p.MovingRight = false
			p.VX = 0
		}
	case IntentJumpStart:
		if p.CanJump() {
			p.Jumping = true
			p.OnGround = false
			p.VY = w.cfg.Lift
			w.emit(CueJump)
		}
	case IntentJumpStop:
		p.Jumping = false
	case IntentAttack:
		if p.CanAttack() {
			p.StartAttack()
			w.emit(CueAttack)
		}
	case IntentInteract:
		return w.useInteract()
	}
	return nil
}

// Restart reloads according to the status: after game over the current level
// is reloaded, after a win the run starts over from the first level, and
// during play the current level is reloaded in place. Other statuses ignore it.
func (w *World) Restart() error {
	switch w.status.Current() {
	case StatusGameOver:
		if err := w.load(w.level); err != nil {
			return err
		}
		w.total = 0
		return w.status.Transition(StatusPlaying)
	case StatusWin:
		if err := w.load(0); err != nil {
			return err
		}
		w.total = 0
		return w.status.Transition(StatusPlaying)
	case StatusPlaying:
		return w.load(w.level)
	}
	return nil
}

// SelectLevel jumps to a level and starts a fresh run there.
// It is honoured from the menu and during play.
func (w *World) SelectLevel(index int) error {
	switch w.status.Current() {
	case StatusMenu, StatusPlaying:
	default:
		return nil
	}
	if err := w.load(index); err != nil {
		return err
	}
	w.total = 0
	return nil
}
