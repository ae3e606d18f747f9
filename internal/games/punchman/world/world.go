package world

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownLevel is returned when a level index is outside the level set.
var ErrUnknownLevel = errors.New("world: unknown level")

// Config holds the tunables of the simulation.
// Speeds are pixels per millisecond, accelerations pixels per millisecond squared.
type Config struct {
	Gravity      float64
	Lift         float64 // initial jump velocity, negative is up
	RunSpeed     float64
	EnemySpeed   float64
	MaxFallSpeed float64 // 0 disables the clamp

	PlayerW, PlayerH float64
	EnemyW, EnemyH   float64
	PortalW, PortalH float64
	SwitchW, SwitchH float64

	Hits          int
	Lives         int
	Knockback     float64
	AttackFrames  int
	AttackFrameMs float64
	GemThreshold  int

	// MaxFrameDelta bounds a single Step so a stalled caller cannot tunnel
	// entities through tiles. 0 disables the bound.
	MaxFrameDelta time.Duration
}

// DefaultConfig returns the tuning used by the bundled levels.
func DefaultConfig() Config {
	return Config{
		Gravity:       0.0015,
		Lift:          -0.6,
		RunSpeed:      0.2,
		EnemySpeed:    0.1,
		MaxFallSpeed:  0.9,
		PlayerW:       24,
		PlayerH:       30,
		EnemyW:        28,
		EnemyH:        28,
		PortalW:       32,
		PortalH:       48,
		SwitchW:       24,
		SwitchH:       32,
		Hits:          3,
		Lives:         3,
		Knockback:     4,
		AttackFrames:  5,
		AttackFrameMs: 100,
		GemThreshold:  3,
		MaxFrameDelta: 50 * time.Millisecond,
	}
}

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Reveal is the tile rewrite performed by a level's switch.
type Reveal struct {
	Col, Row int
	Code     TileCode
}

// LevelSpec is everything needed to (re)build a level.
// Grid must be a freshly loaded copy; the world takes ownership of it.
type LevelSpec struct {
	Name    string
	Grid    *Grid
	Spawn   Point
	Enemies []Point
	Portal  Point
	Switch  Point
	Reveal  Reveal
}

// LevelSource provides level specs by index.
// Load must read the level from its source every time it is called so a
// reload restores collected pickups.
type LevelSource interface {
	Count() int
	Load(index int) (LevelSpec, error)
}

// World is the whole simulation state. It is owned by a single goroutine.
type World struct {
	cfg    Config
	levels LevelSource

	grid    *Grid
	level   int
	spec    LevelSpec
	player  *Player
	enemies []*Enemy
	portal  *Prop
	sw      *Prop

	status StatusMachine

	coins    int
	total    int
	switchOn bool
	revealed bool
	inPortal bool
	inSwitch bool
	debug    bool
	muted    bool

	tick uint64
	cues []Cue
}

// New builds a world on the first level, in the menu state.
func New(cfg Config, levels LevelSource) (*World, error) {
	if levels == nil || levels.Count() == 0 {
		return nil, fmt.Errorf("%w: empty level set", ErrUnknownLevel)
	}
	w := &World{
		cfg:    cfg,
		levels: levels,
	}
	if err := w.load(0); err != nil {
		return nil, err
	}
	return w, nil
}

// load reads a level and rebuilds every entity from it.
// On error the world is left as it was.
func (w *World) load(index int) error {
	if index < 0 || index >= w.levels.Count() {
		return fmt.Errorf("%w: %d", ErrUnknownLevel, index+1)
	}
	spec, err := w.levels.Load(index)
	if err != nil {
		return fmt.Errorf("world: load level %d: %w", index+1, err)
	}
	if spec.Grid == nil {
		return fmt.Errorf("world: load level %d: %w", index+1, ErrEmptyMap)
	}

	cfg := w.cfg
	w.level = index
	w.spec = spec
	w.grid = spec.Grid

	w.player = NewPlayer(spec.Spawn.X, spec.Spawn.Y, cfg.PlayerW, cfg.PlayerH, cfg)

	w.enemies = make([]*Enemy, 0, len(spec.Enemies))
	for _, at := range spec.Enemies {
		w.enemies = append(w.enemies, NewEnemy(at.X, at.Y, cfg.EnemyW, cfg.EnemyH, cfg.EnemySpeed))
	}

	w.portal = NewProp(spec.Portal.X, spec.Portal.Y, cfg.PortalW, cfg.PortalH)
	w.portal.Hidden = true
	w.sw = NewProp(spec.Switch.X, spec.Switch.Y, cfg.SwitchW, cfg.SwitchH)

	w.coins = 0
	w.switchOn = false
	w.revealed = false
	w.inPortal = false
	w.inSwitch = false
	return nil
}

// respawn puts the player back at the level start with full hit points and
// one life fewer.
func (w *World) respawn() {
	p := w.player
	p.Lives--
	p.resetRun(w.cfg)
	p.Place(w.spec.Spawn.X, w.spec.Spawn.Y)
	w.emit(CueDeath)
}

// Status returns the current game status.
func (w *World) Status() Status { return w.status.Current() }

// Level returns the zero-based index of the current level.
func (w *World) Level() int { return w.level }

// LevelCount returns the number of levels available.
func (w *World) LevelCount() int { return w.levels.Count() }

// Grid returns the live tile grid. Callers must treat it as read-only.
func (w *World) Grid() *Grid { return w.grid }

// Player returns the live player.
func (w *World) Player() *Player { return w.player }

// Enemies returns the live enemy list.
func (w *World) Enemies() []*Enemy { return w.enemies }

// Portal returns the level portal.
func (w *World) Portal() *Prop { return w.portal }

// Switch returns the level switch.
func (w *World) Switch() *Prop { return w.sw }

// Coins returns coins collected since the level was (re)loaded.
func (w *World) Coins() int { return w.coins }

// Total returns the score banked at portals.
func (w *World) Total() int { return w.total }

// Score is the banked total plus coins held in the current level.
func (w *World) Score() int { return w.total + w.coins }

// Config returns the simulation tuning.
func (w *World) Config() Config { return w.cfg }

// Debug reports whether debug overlays are on.
func (w *World) Debug() bool { return w.debug }

// Muted reports whether music is muted.
func (w *World) Muted() bool { return w.muted }
