package world

import (
	"slices"
	"testing"
)

func TestEnemyContactOnLastHitKillsPlayer(t *testing.T) {
	w := newPlayingWorld(t, twoLevels())
	p := w.Player()
	p.Hits = 1
	spawnX := p.X

	e := NewEnemy(p.X+4, p.Y, 28, 28, 0.1)
	e.VX = 0.1
	w.enemies = []*Enemy{e}

	ResolveInteractions(w)

	if !p.Dead {
		t.Error("player should be dead at zero hit points")
	}
	if p.Hits != 0 {
		t.Errorf("Hits = %d, expected 0", p.Hits)
	}
	if e.Facing != FacingLeft || e.VX != -0.1 {
		t.Errorf("enemy facing/VX = %v/%v, expected reversed", e.Facing, e.VX)
	}
	if p.X != spawnX-w.Config().Knockback {
		t.Errorf("player X = %v, expected knockback to %v", p.X, spawnX-w.Config().Knockback)
	}
	if p.VY != w.Config().Lift {
		t.Errorf("player VY = %v, expected lift %v", p.VY, w.Config().Lift)
	}
	if cues := w.DrainCues(); !slices.Equal(cues, []Cue{CueHurt}) {
		t.Errorf("cues = %v, expected [hurt]", cues)
	}
}

func TestEnemyContactKnockbackFollowsFacing(t *testing.T) {
	w := newPlayingWorld(t, twoLevels())
	p := w.Player()
	p.Facing = FacingLeft
	x := p.X

	w.enemies = []*Enemy{NewEnemy(p.X+4, p.Y, 28, 28, 0.1)}
	ResolveInteractions(w)

	if p.X != x+w.Config().Knockback {
		t.Errorf("X = %v, expected knocked right to %v", p.X, x+w.Config().Knockback)
	}
	if p.Hits != w.Config().Hits-1 {
		t.Errorf("Hits = %d, expected %d", p.Hits, w.Config().Hits-1)
	}
	if p.Dead {
		t.Error("one hit with hit points left should not kill")
	}
}

func TestAttackDefeatsEnemy(t *testing.T) {
	w := newPlayingWorld(t, twoLevels())
	p := w.Player()
	p.Attacking = true

	e := NewEnemy(p.X+4, p.Y, 28, 28, 0.1)
	e.VX = 0.1
	w.enemies = []*Enemy{e}

	ResolveInteractions(w)

	if !e.Dead || !e.Hidden {
		t.Error("attacked enemy should be dead and hidden")
	}
	if e.VX != 0 || e.VY != 0 {
		t.Error("defeated enemy should stop")
	}
	if p.Hits != w.Config().Hits {
		t.Error("attacking player should take no damage")
	}
	if cues := w.DrainCues(); !slices.Equal(cues, []Cue{CueHit}) {
		t.Errorf("cues = %v, expected [hit]", cues)
	}

	// Dead enemies no longer interact
	p.Attacking = false
	ResolveInteractions(w)
	if p.Hits != w.Config().Hits {
		t.Error("dead enemy should not hurt the player")
	}
}

func TestPortalRangeOnlyWhenVisible(t *testing.T) {
	w := newPlayingWorld(t, twoLevels())

	ResolveInteractions(w)
	if w.InPortal() {
		t.Error("hidden portal should not be in range")
	}

	w.Portal().Hidden = false
	ResolveInteractions(w)
	if !w.InPortal() {
		t.Error("visible portal over the player should be in range")
	}

	w.Player().Place(200, 98)
	ResolveInteractions(w)
	if w.InPortal() {
		t.Error("range flag must be recomputed every call")
	}
}

func TestSwitchTogglesReveal(t *testing.T) {
	w := newPlayingWorld(t, twoLevels())
	settle(w)
	w.Player().Place(256, 98)
	w.Step(tick)

	if !w.InSwitch() {
		t.Fatal("player over the switch should be in range")
	}

	if err := w.Apply(IntentInteract); err != nil {
		t.Fatalf("interact error: %v", err)
	}
	if !w.SwitchOn() {
		t.Error("switch should be on")
	}
	if code, _ := w.Grid().Code(4, 2); code != TilePlatform {
		t.Errorf("reveal cell = %v, expected platform", code)
	}

	if err := w.Apply(IntentInteract); err != nil {
		t.Fatalf("interact error: %v", err)
	}
	if code, _ := w.Grid().Code(4, 2); code != TileAir {
		t.Errorf("reveal cell = %v, expected air after switching off", code)
	}
}

func TestSwitchRevealsCollectibleOnce(t *testing.T) {
	lvl := flatLevel("gem reveal")
	lvl.reveal = Reveal{Col: 4, Row: 2, Code: TileGem}
	w := newPlayingWorld(t, memLevels{lvl})
	w.inSwitch = true

	_ = w.Apply(IntentInteract)
	gem, _ := w.Grid().Cell(4, 2)
	if !PickUp(w, gem) {
		t.Fatal("revealed gem should be collectible")
	}
	_ = w.Apply(IntentInteract)
	_ = w.Apply(IntentInteract)

	if code, _ := w.Grid().Code(4, 2); code != TileAir {
		t.Errorf("reveal cell = %v, a collected gem must not come back", code)
	}
}

func TestPortalAdvancesLevel(t *testing.T) {
	loads := 0
	levels := twoLevels()
	levels[1].loads = &loads

	w := newPlayingWorld(t, levels)
	p := w.Player()
	p.Gems = 3
	w.coins = 5

	w.Step(tick)
	if w.Portal().Hidden {
		t.Fatal("portal should appear at the gem threshold")
	}
	if !w.InPortal() {
		t.Fatal("player at the start should be in portal range")
	}
	w.DrainCues()

	if err := w.Apply(IntentInteract); err != nil {
		t.Fatalf("interact error: %v", err)
	}

	if w.Level() != 1 {
		t.Errorf("Level = %d, expected 1", w.Level())
	}
	if w.Total() != 5 {
		t.Errorf("Total = %d, expected 5", w.Total())
	}
	if w.Coins() != 0 {
		t.Errorf("Coins = %d, expected 0", w.Coins())
	}
	if w.Player().Gems != 0 {
		t.Errorf("Gems = %d, expected 0 on the new level", w.Player().Gems)
	}
	if loads != 1 {
		t.Errorf("level 2 loaded %d times, expected 1", loads)
	}
	if w.Status() != StatusPlaying {
		t.Errorf("Status = %v, expected playing", w.Status())
	}
	if cues := w.DrainCues(); !slices.Equal(cues, []Cue{CuePortal}) {
		t.Errorf("cues = %v, expected [portal]", cues)
	}
}

func TestFinalPortalWins(t *testing.T) {
	w := newPlayingWorld(t, twoLevels())
	if err := w.Apply(IntentLevel2); err != nil {
		t.Fatalf("select level error: %v", err)
	}
	w.Player().Gems = 3
	w.coins = 2
	w.Step(tick)

	if err := w.Apply(IntentInteract); err != nil {
		t.Fatalf("interact error: %v", err)
	}
	if w.Status() != StatusWin {
		t.Fatalf("Status = %v, expected win", w.Status())
	}
	if w.Total() != 2 {
		t.Errorf("Total = %d, expected 2", w.Total())
	}

	if err := w.Apply(IntentRestart); err != nil {
		t.Fatalf("restart error: %v", err)
	}
	if w.Status() != StatusPlaying || w.Level() != 0 {
		t.Errorf("after restart: status %v level %d, expected playing level 0", w.Status(), w.Level())
	}
	if w.Total() != 0 {
		t.Errorf("Total = %d, expected 0 after restart", w.Total())
	}
}

func TestPortalBeatsSwitch(t *testing.T) {
	w := newPlayingWorld(t, twoLevels())
	w.inPortal = true
	w.inSwitch = true

	if err := w.Apply(IntentInteract); err != nil {
		t.Fatalf("interact error: %v", err)
	}
	if w.Level() != 1 {
		t.Error("interact should use the portal first")
	}
	if w.SwitchOn() {
		t.Error("switch should not toggle when the portal is used")
	}
}
