package world

// Shape is anything with an axis-aligned box and a bounding circle radius.
// The circle is centred on the box centre.
type Shape interface {
	Bounds() (x, y, w, h float64)
	CircleRadius() float64
}

// BoxOverlap reports whether the boxes of a and b intersect.
// Touching edges do not count as overlap.
func BoxOverlap(a, b Shape) bool {
	ax, ay, aw, ah := a.Bounds()
	bx, by, bw, bh := b.Bounds()
	return ax+aw > bx && ax < bx+bw &&
		ay+ah > by && ay < by+bh
}

// CircleOverlap reports whether the bounding circles of a and b intersect:
// squared centre distance strictly below the squared sum of radii.
func CircleOverlap(a, b Shape) bool {
	ax, ay, aw, ah := a.Bounds()
	bx, by, bw, bh := b.Bounds()

	dx := (ax + aw/2) - (bx + bw/2)
	dy := (ay + ah/2) - (by + bh/2)
	r := a.CircleRadius() + b.CircleRadius()

	return dx*dx+dy*dy < r*r
}

// Overlaps is the two-phase test used for every entity interaction:
// a cheap box reject followed by the circle accept.
func Overlaps(a, b Shape) bool {
	return BoxOverlap(a, b) && CircleOverlap(a, b)
}

// The directional tile tests are independent of each other: each corner of an
// entity's box may be touching a different tile.

// HitRight reports whether s's right edge has crossed into a solid tile's left edge.
func HitRight(t Tile, s Shape, _ *Grid) bool {
	x, _, w, _ := s.Bounds()
	return !t.Code.IsAir() && x+w > t.X
}

// HitLeft reports whether s's left edge has crossed into a solid tile's right edge.
func HitLeft(t Tile, s Shape, g *Grid) bool {
	x, _, _, _ := s.Bounds()
	return !t.Code.IsAir() && x < t.X+float64(g.CellWidth())
}

// HitTop reports whether s's top edge has crossed into a solid tile's bottom edge.
func HitTop(t Tile, s Shape, g *Grid) bool {
	_, y, _, _ := s.Bounds()
	return !t.Code.IsAir() && y < t.Y+float64(g.CellHeight())
}

// HitBottom reports whether s's bottom edge has crossed into a solid tile's top edge.
func HitBottom(t Tile, s Shape, _ *Grid) bool {
	_, y, _, h := s.Bounds()
	return !t.Code.IsAir() && y+h > t.Y
}
