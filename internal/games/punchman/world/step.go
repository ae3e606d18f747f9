package world

import "time"

// Step advances the simulation by dt. It does nothing unless the game is
// playing. The order of the phases below matters: gravity before
// integration, interactions before tile collision so knockback is clamped by
// walls in the same tick. The only error is a refused switch to game over.
func (w *World) Step(dt time.Duration) error {
	if w.status.Current() != StatusPlaying {
		return nil
	}
	if dt <= 0 {
		return nil
	}
	if w.cfg.MaxFrameDelta > 0 && dt > w.cfg.MaxFrameDelta {
		dt = w.cfg.MaxFrameDelta
	}
	ms := float64(dt) / float64(time.Millisecond)
	w.tick++

	p := w.player

	// Death and respawn
	if p.Dead || p.OnHazard {
		w.respawn()
	}
	if p.Lives <= 0 {
		p.Lives = 0
		return w.status.Transition(StatusGameOver)
	}

	// Horizontal intent
	p.Behavior.Update(&p.Body, w.grid)

	// Gravity
	w.fall(&p.Body, ms)
	for _, e := range w.enemies {
		if !e.Dead {
			w.fall(&e.Body, ms)
		}
	}

	// Integration
	p.Integrate(ms)
	w.portal.Integrate(ms)
	w.sw.Integrate(ms)
	for _, e := range w.enemies {
		if !e.Dead {
			e.Integrate(ms)
		}
	}

	p.updateMotion(ms)

	// Portal unlock
	if w.portal.Hidden && p.Gems >= w.cfg.GemThreshold {
		w.portal.Hidden = false
	}

	ResolveInteractions(w)

	for _, e := range w.enemies {
		if !e.Dead {
			e.Behavior.Update(&e.Body, w.grid)
		}
	}

	ApplyScreenEdge(&p.Body, w.grid)
	for _, e := range w.enemies {
		if !e.Dead {
			ApplyScreenEdge(&e.Body, w.grid)
		}
	}

	ResolveTiles(w, &p.Body, true)
	for _, e := range w.enemies {
		if !e.Dead {
			ResolveTiles(w, &e.Body, false)
		}
	}
	return nil
}

// fall applies gravity to an airborne body, clamped to the terminal velocity.
func (w *World) fall(b *Body, ms float64) {
	if b.OnGround {
		return
	}
	b.VY += w.cfg.Gravity * ms
	if w.cfg.MaxFallSpeed > 0 && b.VY > w.cfg.MaxFallSpeed {
		b.VY = w.cfg.MaxFallSpeed
	}
}

// Tick returns the number of simulated ticks since the world was created.
func (w *World) Tick() uint64 { return w.tick }
