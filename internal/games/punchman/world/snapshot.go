package world

import "math"

// EntityView is a read-only copy of one entity for rendering and tests.
type EntityView struct {
	X, Y, W, H float64
	Radius     float64
	VX, VY     float64
	Facing     float64
	Dead       bool
	Hidden     bool
	OnGround   bool
}

func viewOf(b *Body) EntityView {
	return EntityView{
		X:        b.X,
		Y:        b.Y,
		W:        b.W,
		H:        b.H,
		Radius:   b.Radius,
		VX:       b.VX,
		VY:       b.VY,
		Facing:   b.Facing,
		Dead:     b.Dead,
		Hidden:   b.Hidden,
		OnGround: b.OnGround,
	}
}

// Snapshot is the complete observable state after a tick.
// Grid is a private copy and safe to keep.
type Snapshot struct {
	Tick      uint64
	Status    Status
	Level     int
	LevelName string

	Player      EntityView
	Motion      MotionState
	Frame       int
	Enemies     []EntityView
	Portal      EntityView
	Switch      EntityView
	SwitchOn    bool
	InPortal    bool
	InSwitch    bool
	Hits        int
	Lives       int
	Gems        int
	Coins       int
	Total       int
	Debug       bool
	Muted       bool
	Grid        *Grid
	DangerMusic bool
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	enemies := make([]EntityView, len(w.enemies))
	for i, e := range w.enemies {
		enemies[i] = viewOf(&e.Body)
	}
	p := w.player
	return Snapshot{
		Tick:        w.tick,
		Status:      w.status.Current(),
		Level:       w.level,
		LevelName:   w.spec.Name,
		Player:      viewOf(&p.Body),
		Motion:      p.Motion,
		Frame:       p.Frame(),
		Enemies:     enemies,
		Portal:      viewOf(&w.portal.Body),
		Switch:      viewOf(&w.sw.Body),
		SwitchOn:    w.switchOn,
		InPortal:    w.inPortal,
		InSwitch:    w.inSwitch,
		Hits:        p.Hits,
		Lives:       p.Lives,
		Gems:        p.Gems,
		Coins:       w.coins,
		Total:       w.total,
		Debug:       w.debug,
		Muted:       w.muted,
		Grid:        w.grid.Clone(),
		DangerMusic: p.Hits == 1,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.Status)
	h = h*31 + uint64(s.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Motion)     //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Hits)       //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Gems)       //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Coins)      //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Total)      //#nosec G115 -- hash computation
	h = h*31 + boolBit(s.SwitchOn)

	h = hashView(h, s.Player)
	h = hashView(h, s.Portal)
	h = hashView(h, s.Switch)
	for _, e := range s.Enemies {
		h = hashView(h, e)
	}

	if s.Grid != nil {
		for _, c := range s.Grid.codes {
			h = h*31 + uint64(c)
		}
	}
	return h
}

func hashView(h uint64, v EntityView) uint64 {
	h = h*31 + math.Float64bits(v.X)
	h = h*31 + math.Float64bits(v.Y)
	h = h*31 + math.Float64bits(v.VX)
	h = h*31 + math.Float64bits(v.VY)
	h = h*31 + math.Float64bits(v.Facing)
	h = h*31 + boolBit(v.Dead)
	h = h*31 + boolBit(v.Hidden)
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
