// Package punchman adapts the platformer world to the platform's Game
// interface: input frames become world intents, ticks become fixed-length
// steps, and snapshots are drawn into the screen buffer.
package punchman

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-punchman/internal/config"
	"github.com/vovakirdan/tui-punchman/internal/core"
	"github.com/vovakirdan/tui-punchman/internal/games/punchman/world"
)

// ID is the game identifier used for score storage.
const ID = "punchman"

// CueSink consumes the sound cues of each tick. Implementations must not block.
type CueSink interface {
	Play(c world.Cue)
	SetMuted(muted bool)
	SetDanger(danger bool)
}

// Game implements core.Game for Punch Man.
type Game struct {
	world   *world.World
	levels  world.LevelSource
	cfg     world.Config
	runtime core.RuntimeConfig
	step    time.Duration
	logger  *log.Logger
	sink    CueSink

	status world.Status
	level  int
	muted  bool
	danger bool
}

// New creates a game over the given levels. It fails if the first level
// cannot be loaded. A nil logger discards log output.
func New(cfg config.PunchmanConfig, levels world.LevelSource, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		levels: levels,
		cfg:    WorldConfig(cfg),
		logger: logger,
	}
	if err := g.newWorld(); err != nil {
		return nil, err
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// SetCueSink routes sound cues to s. A nil sink drops them.
func (g *Game) SetCueSink(s CueSink) {
	g.sink = s
	if s != nil {
		s.SetMuted(g.muted)
		s.SetDanger(g.danger)
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Punch Man"
}

// World exposes the simulation, mainly for tests and tooling.
func (g *Game) World() *world.World {
	return g.world
}

// Reset applies runtime settings and, unless the game is still on the
// menu, starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.step = time.Second / time.Duration(runtime.TickRate)

	if g.world.Status() == world.StatusMenu {
		return
	}
	if err := g.newWorld(); err != nil {
		g.logger.Error("reset failed, keeping the current run", "err", err)
	}
}

func (g *Game) newWorld() error {
	w, err := world.New(g.cfg, g.levels)
	if err != nil {
		return err
	}
	g.world = w
	g.status = w.Status()
	g.level = w.Level()
	return nil
}

// Step applies the frame's input and advances the world by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var errs []error
	for _, ev := range in.Events {
		intent := g.intentFor(ev)
		if intent == world.IntentNone {
			continue
		}
		if err := g.world.Apply(intent); err != nil {
			g.logger.Error("intent failed", "intent", intent, "err", err)
			errs = append(errs, err)
		}
	}

	if err := g.world.Step(g.step); err != nil {
		g.logger.Error("step failed", "tick", g.world.Tick(), "err", err)
		errs = append(errs, err)
	}
	g.flushCues()
	g.observe()

	return core.StepResult{State: g.State(), Err: errors.Join(errs...)}
}

// intentFor maps one input edge to a world intent.
func (g *Game) intentFor(ev core.InputEvent) world.Intent {
	if ev.Released {
		switch ev.Action {
		case core.ActionMoveLeft:
			return world.IntentMoveLeftStop
		case core.ActionMoveRight:
			return world.IntentMoveRightStop
		case core.ActionJump:
			return world.IntentJumpStop
		}
		return world.IntentNone
	}

	switch ev.Action {
	case core.ActionMoveLeft:
		return world.IntentMoveLeftStart
	case core.ActionMoveRight:
		return world.IntentMoveRightStart
	case core.ActionJump:
		return world.IntentJumpStart
	case core.ActionAttack:
		return world.IntentAttack
	case core.ActionInteract:
		return world.IntentInteract
	case core.ActionPause:
		return world.IntentPause
	case core.ActionPlay:
		// Enter doubles as "try again" on the end screens
		switch g.world.Status() {
		case world.StatusGameOver, world.StatusWin:
			return world.IntentRestart
		}
		return world.IntentPlay
	case core.ActionRestart:
		return world.IntentRestart
	case core.ActionDebug:
		return world.IntentDebug
	case core.ActionMute:
		return world.IntentMute
	case core.ActionLevel1:
		return world.IntentLevel1
	case core.ActionLevel2:
		return world.IntentLevel2
	}
	return world.IntentNone
}

// flushCues hands the tick's cues to the sink.
func (g *Game) flushCues() {
	cues := g.world.DrainCues()
	if g.sink == nil {
		return
	}
	for _, c := range cues {
		g.sink.Play(c)
	}
}

// observe logs status and level changes and keeps the sink's music state
// in line with the world.
func (g *Game) observe() {
	w := g.world
	if s := w.Status(); s != g.status {
		g.logger.Info("status changed", "from", g.status, "to", s, "level", w.Level()+1, "score", w.Score(), "tick", w.Tick())
		g.status = s
	}
	if l := w.Level(); l != g.level {
		g.logger.Info("level loaded", "level", l+1, "total", w.Total())
		g.level = l
	}

	muted := w.Muted()
	danger := w.Player().Hits == 1 && w.Status() == world.StatusPlaying
	if muted != g.muted {
		g.muted = muted
		if g.sink != nil {
			g.sink.SetMuted(muted)
		}
	}
	if danger != g.danger {
		g.danger = danger
		if g.sink != nil {
			g.sink.SetDanger(danger)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.world.Status()
	return core.GameState{
		Score:    g.world.Score(),
		Level:    g.world.Level() + 1,
		Status:   s.String(),
		GameOver: s == world.StatusGameOver,
		Won:      s == world.StatusWin,
		Paused:   s == world.StatusPaused,
	}
}
