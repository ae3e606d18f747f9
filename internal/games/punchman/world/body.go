package world

// Facing directions, used as velocity signs.
const (
	FacingRight = 1.0
	FacingLeft  = -1.0
)

// Body is the kinematic state shared by every entity.
// Positions are pixels, velocities are pixels per millisecond.
type Body struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
	Radius float64
	Facing float64

	Dead     bool
	Hidden   bool
	OnGround bool
	OnHazard bool
}

// NewBody creates a body at (x, y) facing right.
// The bounding circle radius is half the larger dimension.
func NewBody(x, y, w, h float64) Body {
	return Body{
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		Radius: max(w, h) / 2,
		Facing: FacingRight,
	}
}

// Bounds returns the axis-aligned box.
func (b *Body) Bounds() (x, y, w, h float64) {
	return b.X, b.Y, b.W, b.H
}

// CircleRadius returns the bounding circle radius.
func (b *Body) CircleRadius() float64 {
	return b.Radius
}

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 {
	return b.Y + b.H
}

// FacingRight returns true if the body looks right.
func (b *Body) FacingRight() bool {
	return b.Facing >= 0
}

// Flip reverses facing.
func (b *Body) Flip() {
	b.Facing = -b.Facing
}

// Reverse flips facing and horizontal velocity together.
func (b *Body) Reverse() {
	b.Facing = -b.Facing
	b.VX = -b.VX
}

// Stop zeroes both velocity components.
func (b *Body) Stop() {
	b.VX = 0
	b.VY = 0
}

// Place moves the body to (x, y) and clears motion and contact flags.
func (b *Body) Place(x, y float64) {
	b.X = x
	b.Y = y
	b.VX = 0
	b.VY = 0
	b.OnGround = false
	b.OnHazard = false
}

// Integrate advances position by velocity over ms milliseconds.
func (b *Body) Integrate(ms float64) {
	b.X += b.VX * ms
	b.Y += b.VY * ms
}

// Enemy is a patrolling hostile. Dead enemies are skipped everywhere.
type Enemy struct {
	Body
	Behavior Behavior
}

// NewEnemy creates a patrolling enemy.
func NewEnemy(x, y, w, h, speed float64) *Enemy {
	return &Enemy{
		Body:     NewBody(x, y, w, h),
		Behavior: PatrolBehavior{Speed: speed},
	}
}

// Defeat kills the enemy: it is hidden and stops moving.
func (e *Enemy) Defeat() {
	e.Dead = true
	e.Hidden = true
	e.Stop()
}

// Prop is a static interactable object: the portal or the switch.
type Prop struct {
	Body
}

// NewProp creates a visible prop.
func NewProp(x, y, w, h float64) *Prop {
	return &Prop{Body: NewBody(x, y, w, h)}
}
