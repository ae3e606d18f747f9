package punchman

import (
	"time"

	"github.com/vovakirdan/tui-punchman/internal/config"
	"github.com/vovakirdan/tui-punchman/internal/games/punchman/world"
)

// WorldConfig converts the loaded configuration into simulation tunables.
func WorldConfig(c config.PunchmanConfig) world.Config {
	return world.Config{
		Gravity:       c.Physics.Gravity,
		Lift:          c.Physics.Lift,
		RunSpeed:      c.Physics.RunSpeed,
		EnemySpeed:    c.Physics.EnemySpeed,
		MaxFallSpeed:  c.Physics.MaxFallSpeed,
		PlayerW:       c.Player.Width,
		PlayerH:       c.Player.Height,
		EnemyW:        c.Enemy.Width,
		EnemyH:        c.Enemy.Height,
		PortalW:       c.Props.PortalWidth,
		PortalH:       c.Props.PortalHeight,
		SwitchW:       c.Props.SwitchWidth,
		SwitchH:       c.Props.SwitchHeight,
		Hits:          c.Player.Hits,
		Lives:         c.Player.Lives,
		Knockback:     c.Player.Knockback,
		AttackFrames:  c.Player.AttackFrames,
		AttackFrameMs: c.Player.AttackFrameMs,
		GemThreshold:  c.World.GemThreshold,
		MaxFrameDelta: time.Duration(c.Physics.MaxFrameMs) * time.Millisecond,
	}
}
