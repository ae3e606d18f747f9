package levels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/vovakirdan/tui-punchman/internal/config"
	"github.com/vovakirdan/tui-punchman/internal/games/punchman/world"
)

func TestBundledLevelsLoad(t *testing.T) {
	cfg := config.DefaultPunchmanConfig()
	l := Bundled(cfg)

	if l.Count() != 2 {
		t.Fatalf("Count() = %d, expected 2", l.Count())
	}

	for i := range l.Count() {
		spec, err := l.Load(i)
		if err != nil {
			t.Fatalf("Load(%d) error: %v", i, err)
		}
		if spec.Name != cfg.Levels[i].Name {
			t.Errorf("level %d name = %q", i, spec.Name)
		}

		gems := spec.Grid.Count(world.TileGem)
		if spec.Reveal.Code == world.TileGem {
			gems++
		}
		if gems < cfg.World.GemThreshold {
			t.Errorf("level %d has %d gems, fewer than the threshold %d", i, gems, cfg.World.GemThreshold)
		}

		if code, _ := spec.Grid.Code(spec.Reveal.Col, spec.Reveal.Row); code != world.TileAir {
			t.Errorf("level %d reveal cell holds %v, expected air", i, code)
		}
	}
}

func TestBundledSpawnsRestOnSolidGround(t *testing.T) {
	cfg := config.DefaultPunchmanConfig()
	l := Bundled(cfg)

	for i, lc := range cfg.Levels {
		spec, err := l.Load(i)
		if err != nil {
			t.Fatalf("Load(%d) error: %v", i, err)
		}
		g := spec.Grid

		standsOn := func(name string, x, y, w, h float64) {
			bottom := y + h
			if int(bottom)%g.CellHeight() != 0 {
				t.Errorf("level %d %s: bottom %v is not on a cell boundary", i, name, bottom)
			}
			left, _ := g.TileAt(x, bottom)
			right, _ := g.TileAt(x+w, bottom)
			if left.Code.IsAir() && right.Code.IsAir() {
				t.Errorf("level %d %s at (%v, %v) stands on air", i, name, x, y)
			}
		}

		standsOn("spawn", lc.Spawn.X, lc.Spawn.Y, cfg.Player.Width, cfg.Player.Height)
		for j, e := range lc.Enemies {
			standsOn("enemy "+string(rune('1'+j)), e.X, e.Y, cfg.Enemy.Width, cfg.Enemy.Height)
		}
	}
}

func TestBundledLevelsAreStable(t *testing.T) {
	cfg := config.DefaultPunchmanConfig()
	wcfg := world.DefaultConfig()

	for i := range cfg.Levels {
		w, err := world.New(wcfg, Bundled(cfg))
		if err != nil {
			t.Fatalf("world.New error: %v", err)
		}
		if err := w.SelectLevel(i); err != nil {
			t.Fatalf("SelectLevel(%d) error: %v", i, err)
		}
		if err := w.Apply(world.IntentPlay); err != nil {
			t.Fatal(err)
		}

		// A minute of idle play: nobody falls off the map or walks into the player
		for range 3750 {
			w.Step(16 * time.Millisecond)
		}

		snap := w.Snapshot()
		if snap.Lives != wcfg.Lives || snap.Hits != wcfg.Hits {
			t.Errorf("level %d: idle player lost lives/hits: %d/%d", i, snap.Lives, snap.Hits)
		}
		for j, e := range snap.Enemies {
			if e.Dead {
				t.Errorf("level %d: enemy %d died while patrolling", i, j+1)
			}
			if !e.OnGround {
				t.Errorf("level %d: enemy %d is not standing on anything", i, j+1)
			}
		}
	}
}

func TestLoadRereadsTheFile(t *testing.T) {
	cfg := config.DefaultPunchmanConfig()
	cfg.Levels = []config.LevelConfig{{
		Name:  "tiny",
		Map:   "tiny.txt",
		Spawn: config.Point{X: 40, Y: 2},
	}}
	fsys := fstest.MapFS{
		"tiny.txt": {Data: []byte("g..g\ngccg\ngggg\n")},
	}
	l := New(fsys, cfg)

	first, err := l.Load(0)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	first.Grid.SetTile(world.TileAir, 1, 1)

	second, err := l.Load(0)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if code, _ := second.Grid.Code(1, 1); code != world.TileCoin {
		t.Error("second load should come fresh from the file")
	}
	if second.Reveal.Code != world.TilePlatform {
		t.Errorf("empty reveal code = %v, expected platform", second.Reveal.Code)
	}
}

func TestLoadErrors(t *testing.T) {
	cfg := config.DefaultPunchmanConfig()
	cfg.Levels = []config.LevelConfig{
		{Name: "missing", Map: "nope.txt"},
		{Name: "ragged", Map: "ragged.txt"},
		{Name: "offmap", Map: "ok.txt", Spawn: config.Point{X: 9000, Y: 0}},
		{Name: "bad reveal", Map: "ok.txt", Reveal: config.RevealConfig{Col: 40, Row: 0, Code: "p"}},
		{Name: "portal offmap", Map: "ok.txt", Portal: config.Point{X: 64, Y: -10}},
		{Name: "switch offmap", Map: "ok.txt", Switch: config.Point{X: 128, Y: 20}},
	}
	fsys := fstest.MapFS{
		"ragged.txt": {Data: []byte("ggg\ngg\n")},
		"ok.txt":     {Data: []byte("g..g\ngggg\n")},
	}
	l := New(fsys, cfg)

	if _, err := l.Load(0); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing map error = %v, expected not-exist", err)
	}
	if _, err := l.Load(1); !errors.Is(err, world.ErrRaggedRows) {
		t.Errorf("ragged map error = %v, expected ErrRaggedRows", err)
	}
	if _, err := l.Load(2); !errors.Is(err, ErrBadPlacement) {
		t.Errorf("off-map spawn error = %v, expected ErrBadPlacement", err)
	}
	if _, err := l.Load(3); !errors.Is(err, ErrBadPlacement) {
		t.Errorf("bad reveal error = %v, expected ErrBadPlacement", err)
	}
	if _, err := l.Load(4); !errors.Is(err, ErrBadPlacement) || !strings.Contains(err.Error(), "portal") {
		t.Errorf("off-map portal error = %v, expected ErrBadPlacement", err)
	}
	if _, err := l.Load(5); !errors.Is(err, ErrBadPlacement) || !strings.Contains(err.Error(), "switch") {
		t.Errorf("off-map switch error = %v, expected ErrBadPlacement", err)
	}
	if _, err := l.Load(6); !errors.Is(err, world.ErrUnknownLevel) {
		t.Errorf("Load(6) error = %v, expected ErrUnknownLevel", err)
	}
}

func TestFromDirAndCheckFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.txt")
	if err := os.WriteFile(path, []byte("g..g\ngggg\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultPunchmanConfig()
	cfg.Levels = []config.LevelConfig{{Name: "room", Map: "room.txt", Spawn: config.Point{X: 40, Y: 2}}}

	spec, err := FromDir(dir, cfg).Load(0)
	if err != nil {
		t.Fatalf("FromDir Load error: %v", err)
	}
	if spec.Grid.Cols() != 4 || spec.Grid.Rows() != 2 {
		t.Errorf("grid = %dx%d, expected 4x2", spec.Grid.Cols(), spec.Grid.Rows())
	}

	if _, err := CheckFile(path, 32, 32); err != nil {
		t.Errorf("CheckFile() error: %v", err)
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("gg\ng\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := CheckFile(bad, 32, 32); !errors.Is(err, world.ErrRaggedRows) {
		t.Errorf("CheckFile(bad) error = %v, expected ErrRaggedRows", err)
	}
}
