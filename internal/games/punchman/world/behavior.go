package world

// Behavior decides an entity's horizontal velocity for the tick.
// Implementations must not touch anything but the given body.
type Behavior interface {
	Update(b *Body, g *Grid)
}

// PatrolBehavior walks in the facing direction and turns around before
// walking off a ledge. Walls are not inspected; the tile resolver's
// right-edge reversal handles those.
type PatrolBehavior struct {
	Speed float64
}

// Update sets velocity by facing, then looks one cell past the leading bottom
// corner on the row containing the bottom edge. If that cell exists and is
// air, the enemy reverses. A cell outside the map is not air.
func (p PatrolBehavior) Update(b *Body, g *Grid) {
	b.VX = p.Speed * b.Facing

	leadX := b.X
	if b.FacingRight() {
		leadX = b.Right()
	}

	col, row := g.CellOf(leadX, b.Bottom())
	if b.FacingRight() {
		col++
	} else {
		col--
	}

	if code, ok := g.Code(col, row); ok && code.IsAir() {
		b.Reverse()
	}
}

// PlayerControlBehavior turns held move flags into horizontal velocity.
// Left wins when both are somehow held; starting one direction normally
// clears the other.
type PlayerControlBehavior struct {
	Controls *Controls
	Speed    float64
}

// Update sets VX to the run speed in the held direction, or zero.
func (p PlayerControlBehavior) Update(b *Body, _ *Grid) {
	switch {
	case p.Controls.MovingLeft:
		b.VX = -p.Speed
	case p.Controls.MovingRight:
		b.VX = p.Speed
	default:
		b.VX = 0
	}
}
