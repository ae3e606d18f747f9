package world

// corners are the four tiles under a body's box corners.
type corners struct {
	topLeft, topRight, bottomLeft, bottomRight Tile
}

// cornersOf looks up the corner tiles. ok is false if any corner is off the map.
func cornersOf(g *Grid, b *Body) (c corners, ok bool) {
	var ok1, ok2, ok3, ok4 bool
	c.topLeft, ok1 = g.TileAt(b.X, b.Y)
	c.topRight, ok2 = g.TileAt(b.Right(), b.Y)
	c.bottomLeft, ok3 = g.TileAt(b.X, b.Bottom())
	c.bottomRight, ok4 = g.TileAt(b.Right(), b.Bottom())
	return c, ok1 && ok2 && ok3 && ok4
}

// ResolveTiles corrects a body against the grid after integration.
//
// Checks run in a fixed order: floor, ceiling, then left or right wall.
// Only one horizontal correction applies per call. When any corner is off the
// map nothing is corrected this tick. The player collects coins and gems it
// touches with its feet or its leading edge instead of being stopped by them.
// Pickups above the player block like any other ceiling.
func ResolveTiles(w *World, b *Body, isPlayer bool) {
	g := w.grid
	c, ok := cornersOf(g, b)
	if !ok {
		return
	}

	// Floor
	if HitBottom(c.bottomLeft, b, g) || HitBottom(c.bottomRight, b, g) {
		if isPlayer && (c.bottomLeft.Code.IsCollectible() || c.bottomRight.Code.IsCollectible()) {
			PickUp(w, preferTravel(b, c.bottomLeft, c.bottomRight))
		} else {
			// Both bottom corners share a row
			b.Y = c.bottomLeft.Y - b.H
			b.VY = 0
		}
	}

	switch {
	case HitTop(c.topLeft, b, g) && HitTop(c.topRight, b, g):
		// Ceiling, pickups included
		b.Y = c.topLeft.Y + float64(g.CellHeight())
	case HitLeft(c.topLeft, b, g):
		if isPlayer && c.topLeft.Code.IsCollectible() {
			PickUp(w, c.topLeft)
		} else {
			b.X = c.topLeft.X + float64(g.CellWidth())
		}
	case HitRight(c.topRight, b, g):
		if isPlayer && c.topRight.Code.IsCollectible() {
			PickUp(w, c.topRight)
		} else {
			b.VX = -b.VX
			b.X = c.topRight.X - b.W - 1
		}
	}

	// Contact flags come from the corners as they were before correction
	b.OnGround = !c.bottomLeft.Code.IsAir() || !c.bottomRight.Code.IsAir()
	b.OnHazard = c.topLeft.Code.IsHazard() || c.topRight.Code.IsHazard() ||
		c.bottomLeft.Code.IsHazard() || c.bottomRight.Code.IsHazard()
}

// preferTravel picks the collectible tile in the direction of travel, falling
// back to the other one. When only the trailing tile is collectible it is
// taken, even if the leading tile is solid.
func preferTravel(b *Body, left, right Tile) Tile {
	first, second := right, left
	if b.VX < 0 {
		first, second = left, right
	}
	if first.Code.IsCollectible() {
		return first
	}
	return second
}

// PickUp consumes a coin or gem at the tile's cell.
// The current grid contents decide, so picking up a cell twice counts once.
// It reports whether anything was collected.
func PickUp(w *World, t Tile) bool {
	code, ok := w.grid.Code(t.Col, t.Row)
	if !ok {
		return false
	}
	switch code {
	case TileCoin:
		w.coins++
		w.emit(CueCoin)
	case TileGem:
		w.player.Gems++
		w.emit(CueGem)
	default:
		return false
	}
	w.grid.SetTile(TileAir, t.Col, t.Row)
	return true
}

// ApplyScreenEdge marks a body dead once its bottom edge drops below the map.
func ApplyScreenEdge(b *Body, g *Grid) {
	if b.Bottom() > float64(g.PixelHeight()) {
		b.Dead = true
	}
}
