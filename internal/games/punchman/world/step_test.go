package world

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestStepOnlyWhilePlaying(t *testing.T) {
	w := newTestWorld(t, twoLevels())
	before := w.Snapshot()

	w.Step(tick)

	after := w.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Step in the menu should not change anything")
	}
	if w.Tick() != 0 {
		t.Errorf("Tick = %d, expected 0", w.Tick())
	}
}

func TestPlayerSettlesOnGround(t *testing.T) {
	w := newPlayingWorld(t, twoLevels())
	settle(w)

	p := w.Player()
	if !p.OnGround {
		t.Fatal("player should be on ground after settling")
	}
	if p.Bottom() != 128 {
		t.Errorf("player bottom = %v, expected 128", p.Bottom())
	}
	if p.VY != 0 {
		t.Errorf("VY = %v, expected 0 at rest", p.VY)
	}
}

func TestGravityClamp(t *testing.T) {
	w := newTestWorld(t, twoLevels())
	b := NewBody(0, 0, 10, 10)

	for range 1000 {
		w.fall(&b, 16)
	}
	if b.VY != w.Config().MaxFallSpeed {
		t.Errorf("VY = %v, expected clamp at %v", b.VY, w.Config().MaxFallSpeed)
	}

	b.VY = 0
	b.OnGround = true
	w.fall(&b, 16)
	if b.VY != 0 {
		t.Error("grounded bodies do not fall")
	}
}

func TestStepClampsFrameDelta(t *testing.T) {
	w := newPlayingWorld(t, twoLevels())
	p := w.Player()
	p.Place(64, 10)

	w.Step(time.Second)

	// 50ms at most: VY = 0.0015*50, Y = 10 + VY*50
	if p.Y > 14 {
		t.Errorf("Y = %v, a stalled frame should be bounded", p.Y)
	}
}

func TestHazardRespawn(t *testing.T) {
	w := newPlayingWorld(t, twoLevels())
	settle(w)
	w.Grid().SetTile(TileSpikes, 3, 3)
	p := w.Player()
	p.MovingRight = true

	for range 60 {
		w.Step(tick)
		if p.Lives < w.Config().Lives {
			break
		}
	}

	if p.Lives != w.Config().Lives-1 {
		t.Fatalf("Lives = %d, expected %d after touching spikes", p.Lives, w.Config().Lives-1)
	}
	if p.X != 64 {
		t.Errorf("X = %v, expected respawn at 64", p.X)
	}
	if p.Hits != w.Config().Hits {
		t.Errorf("Hits = %d, expected full hit points", p.Hits)
	}
	if p.MovingRight {
		t.Error("respawn should clear held movement")
	}
	if !slices.Contains(w.DrainCues(), CueDeath) {
		t.Error("respawn should emit a death cue")
	}
}

func TestFallingOffTheMapCostsALife(t *testing.T) {
	levels := memLevels{{
		name:  "pit",
		text:  pitMap,
		spawn: Point{X: 136, Y: 40},
	}}
	w := newPlayingWorld(t, levels)
	p := w.Player()

	for range 100 {
		w.Step(tick)
		if p.Lives < w.Config().Lives {
			break
		}
	}

	if p.Lives != w.Config().Lives-1 {
		t.Fatalf("Lives = %d, expected one life lost", p.Lives)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	loads := 0
	levels := twoLevels()
	levels[0].loads = &loads

	w := newPlayingWorld(t, levels)
	settle(w)

	// Collect the coin so the grid differs from the file
	coin, _ := w.Grid().Cell(6, 3)
	PickUp(w, coin)
	w.Player().Gems = 2

	p := w.Player()
	p.Lives = 1
	p.Dead = true
	if err := w.Step(tick); err != nil {
		t.Fatalf("Step error: %v", err)
	}

	if w.Status() != StatusGameOver {
		t.Fatalf("Status = %v, expected gameover", w.Status())
	}

	// Game over freezes the simulation
	tickBefore := w.Tick()
	w.Step(tick)
	if w.Tick() != tickBefore {
		t.Error("Step after game over should do nothing")
	}

	loadsBefore := loads
	if err := w.Apply(IntentRestart); err != nil {
		t.Fatalf("restart error: %v", err)
	}

	p = w.Player()
	if w.Status() != StatusPlaying {
		t.Errorf("Status = %v, expected playing", w.Status())
	}
	if p.Lives != 3 || p.Hits != 3 || p.Gems != 0 {
		t.Errorf("lives/hits/gems = %d/%d/%d, expected 3/3/0", p.Lives, p.Hits, p.Gems)
	}
	if w.Coins() != 0 {
		t.Errorf("Coins = %d, expected 0", w.Coins())
	}
	if loads != loadsBefore+1 {
		t.Error("restart should reload the map from its source")
	}
	if code, _ := w.Grid().Code(6, 3); code != TileCoin {
		t.Error("reloaded map should have the coin back")
	}
}

func TestStepReportsRefusedGameOver(t *testing.T) {
	w := newPlayingWorld(t, twoLevels())
	settle(w)

	saved := transitions[StatusPlaying]
	transitions[StatusPlaying] = []Status{StatusPaused, StatusWin}
	t.Cleanup(func() { transitions[StatusPlaying] = saved })

	p := w.Player()
	p.Lives = 1
	p.Dead = true
	err := w.Step(tick)

	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("Step error = %v, expected ErrIllegalTransition", err)
	}
	if w.Status() != StatusPlaying {
		t.Errorf("Status = %v, expected playing", w.Status())
	}
	if p.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", p.Lives)
	}
}

func TestReloadFailureKeepsWorld(t *testing.T) {
	levels := twoLevels()
	w := newPlayingWorld(t, levels)
	w.coins = 4

	broken := memLevels{levels[0], {name: "broken", text: "gg\ng"}}
	w.levels = broken

	err := w.SelectLevel(1)
	if !errors.Is(err, ErrRaggedRows) {
		t.Fatalf("SelectLevel error = %v, expected ErrRaggedRows", err)
	}
	if w.Level() != 0 || w.Coins() != 4 {
		t.Error("failed load must leave the world untouched")
	}

	if err := w.SelectLevel(7); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("SelectLevel(7) error = %v, expected ErrUnknownLevel", err)
	}
}

func TestEnemiesPatrolAndLand(t *testing.T) {
	lvl := flatLevel("patrol")
	lvl.text = pitMap
	lvl.enemies = []Point{{X: 200, Y: 60}}
	w := newPlayingWorld(t, memLevels{lvl})

	for range 300 {
		w.Step(tick)
	}

	e := w.Enemies()[0]
	if e.Dead {
		t.Fatal("patrolling enemy should not walk into the pit")
	}
	if !e.OnGround {
		t.Error("enemy should be standing on the floor")
	}
	if e.X < 160 {
		t.Errorf("enemy X = %v, should stay right of the pit", e.X)
	}
}

func TestDeterminism(t *testing.T) {
	script := map[int][]Intent{
		0:   {IntentPlay},
		5:   {IntentMoveRightStart},
		20:  {IntentJumpStart},
		24:  {IntentJumpStop},
		60:  {IntentMoveRightStop},
		61:  {IntentAttack},
		80:  {IntentMoveLeftStart},
		120: {IntentMoveLeftStop, IntentDebug},
	}

	run := func() Snapshot {
		lvl := flatLevel("det")
		lvl.enemies = []Point{{X: 200, Y: 100}}
		w := newTestWorld(t, memLevels{lvl})
		for i := range 200 {
			for _, in := range script[i] {
				_ = w.Apply(in)
			}
			w.Step(tick)
		}
		return w.Snapshot()
	}

	a := run()
	b := run()
	if a.Hash() != b.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash(), b.Hash())
	}
	if a.Tick == 0 {
		t.Error("scripted run should have simulated ticks")
	}
}
