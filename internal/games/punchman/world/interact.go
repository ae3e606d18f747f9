package world

// ResolveInteractions runs the player against every live enemy, the visible
// portal and the switch, using the two-phase overlap test. The portal and
// switch range flags are recomputed from scratch on every call.
func ResolveInteractions(w *World) {
	p := w.player

	w.inPortal = false
	w.inSwitch = false

	for _, e := range w.enemies {
		if e.Dead {
			continue
		}
		if !Overlaps(p, e) {
			continue
		}
		if p.Attacking {
			e.Defeat()
			w.emit(CueHit)
			continue
		}
		hurtPlayer(w, e)
	}

	if !w.portal.Hidden && Overlaps(p, w.portal) {
		w.inPortal = true
	}
	if !w.sw.Hidden && Overlaps(p, w.sw) {
		w.inSwitch = true
	}
}

// hurtPlayer applies one enemy contact: the enemy turns around, the player is
// stopped, knocked back against its facing, loses a hit point and is lifted.
func hurtPlayer(w *World, e *Enemy) {
	p := w.player

	e.Reverse()

	p.Stop()
	if p.FacingRight() {
		p.X -= w.cfg.Knockback
	} else {
		p.X += w.cfg.Knockback
	}
	p.Hits--
	p.VY = w.cfg.Lift
	if p.Hits <= 0 {
		p.Hits = 0
		p.Dead = true
	}
	w.emit(CueHurt)
}

// InPortal reports whether the player overlapped the visible portal last tick.
func (w *World) InPortal() bool { return w.inPortal }

// InSwitch reports whether the player overlapped the switch last tick.
func (w *World) InSwitch() bool { return w.inSwitch }

// SwitchOn reports the level switch state.
func (w *World) SwitchOn() bool { return w.switchOn }

// useInteract handles the interact intent: the portal wins over the switch.
func (w *World) useInteract() error {
	switch {
	case w.inPortal:
		return w.enterPortal()
	case w.inSwitch:
		w.toggleSwitch()
	}
	return nil
}

// enterPortal banks the level's coins and moves on, or wins after the last level.
func (w *World) enterPortal() error {
	next := w.level + 1
	if next >= w.levels.Count() {
		w.total += w.coins
		w.coins = 0
		w.inPortal = false
		w.emit(CuePortal)
		return w.status.Transition(StatusWin)
	}

	coins := w.coins
	if err := w.load(next); err != nil {
		return err
	}
	w.total += coins
	w.emit(CuePortal)
	return nil
}

// toggleSwitch flips the switch and rewrites the level's reveal cell.
// A collectible reveal appears once per load so the switch cannot farm it.
func (w *World) toggleSwitch() {
	w.switchOn = !w.switchOn
	r := w.spec.Reveal
	switch {
	case !w.switchOn:
		w.grid.SetTile(TileAir, r.Col, r.Row)
	case r.Code.IsCollectible() && w.revealed:
	default:
		w.grid.SetTile(r.Code, r.Col, r.Row)
		w.revealed = true
	}
	w.emit(CueSwitch)
}
