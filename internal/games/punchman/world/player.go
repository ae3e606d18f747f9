package world

// MotionState is the player's explicit animation/state tag.
type MotionState int

const (
	MotionIdle MotionState = iota
	MotionMoving
	MotionAttacking
)

// String returns a human-readable name for the motion state.
func (m MotionState) String() string {
	switch m {
	case MotionIdle:
		return "idle"
	case MotionMoving:
		return "moving"
	case MotionAttacking:
		return "attacking"
	default:
		return "unknown"
	}
}

// Controls are the player's held-input flags.
type Controls struct {
	MovingLeft  bool
	MovingRight bool
	Jumping     bool
	Attacking   bool
}

// Idle reports whether no horizontal movement is held.
func (c *Controls) Idle() bool {
	return !c.MovingLeft && !c.MovingRight
}

// Clock is a looping frame counter driven by elapsed milliseconds.
type Clock struct {
	Frames  int
	FrameMs float64
	elapsed float64
}

// Advance adds ms to the clock and reports whether a full loop has completed
// since the last Reset.
func (c *Clock) Advance(ms float64) bool {
	c.elapsed += ms
	return c.elapsed >= c.Duration()
}

// Duration returns the length of one loop in milliseconds.
func (c *Clock) Duration() float64 {
	return float64(c.Frames) * c.FrameMs
}

// Frame returns the current frame index within the loop.
func (c *Clock) Frame() int {
	if c.Frames <= 0 || c.FrameMs <= 0 {
		return 0
	}
	return int(c.elapsed/c.FrameMs) % c.Frames
}

// Reset rewinds the clock to frame zero.
func (c *Clock) Reset() {
	c.elapsed = 0
}

// Player is the controllable entity.
type Player struct {
	Body
	Controls

	Hits  int
	Lives int
	Gems  int

	Motion   MotionState
	Behavior Behavior

	attack Clock
	walk   Clock
}

// NewPlayer creates a player at (x, y) driven by held controls.
func NewPlayer(x, y, w, h float64, cfg Config) *Player {
	p := &Player{
		Body:   NewBody(x, y, w, h),
		Hits:   cfg.Hits,
		Lives:  cfg.Lives,
		attack: Clock{Frames: cfg.AttackFrames, FrameMs: cfg.AttackFrameMs},
		walk:   Clock{Frames: 4, FrameMs: cfg.AttackFrameMs},
	}
	p.Behavior = PlayerControlBehavior{Controls: &p.Controls, Speed: cfg.RunSpeed}
	return p
}

// Frame returns the animation frame for the current motion state.
func (p *Player) Frame() int {
	if p.Motion == MotionAttacking {
		return p.attack.Frame()
	}
	return p.walk.Frame()
}

// CanJump reports whether a jump may start.
func (p *Player) CanJump() bool {
	return p.OnGround && !p.Jumping
}

// CanAttack reports whether an attack may start: idle, grounded and not
// already inside an attack loop.
func (p *Player) CanAttack() bool {
	return !p.Attacking && p.Motion != MotionAttacking && p.Idle() && p.OnGround
}

// StartAttack begins one attack loop.
func (p *Player) StartAttack() {
	p.Attacking = true
	p.Motion = MotionAttacking
	p.attack.Reset()
}

// updateMotion advances the attack loop and derives the motion tag.
// An attack in progress blocks the idle/moving tag until its loop completes.
func (p *Player) updateMotion(ms float64) {
	if p.Attacking {
		if !p.attack.Advance(ms) {
			p.Motion = MotionAttacking
			return
		}
		p.Attacking = false
		p.attack.Reset()
	}

	if p.Idle() {
		if p.Motion != MotionIdle {
			p.walk.Reset()
		}
		p.Motion = MotionIdle
	} else {
		if p.Motion != MotionMoving {
			p.walk.Reset()
		}
		p.Motion = MotionMoving
	}
	p.walk.Advance(ms)
}

// resetRun restores hit points and clears everything a reload or respawn
// must not carry over.
func (p *Player) resetRun(cfg Config) {
	p.Hits = cfg.Hits
	p.Dead = false
	p.Hidden = false
	p.Controls = Controls{}
	p.Motion = MotionIdle
	p.Facing = FacingRight
	p.attack.Reset()
	p.walk.Reset()
}
