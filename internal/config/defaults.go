package config

import (
	_ "embed"
)

//go:embed defaults/punchman.yaml
var defaultPunchmanYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultPunchmanYAML))
	copy(out, defaultPunchmanYAML)
	return out
}

// DefaultPunchmanConfig returns the default configuration.
// It mirrors defaults/punchman.yaml and is used if the embedded file cannot be parsed.
func DefaultPunchmanConfig() PunchmanConfig {
	return PunchmanConfig{
		Physics: PhysicsConfig{
			Gravity:      0.0015,
			Lift:         -0.6,
			RunSpeed:     0.2,
			EnemySpeed:   0.1,
			MaxFallSpeed: 0.9,
			MaxFrameMs:   50,
		},
		Player: PlayerConfig{
			Width:         24,
			Height:        30,
			Hits:          3,
			Lives:         3,
			Knockback:     4,
			AttackFrames:  5,
			AttackFrameMs: 100,
		},
		Enemy: EnemyConfig{
			Width:  28,
			Height: 28,
		},
		Props: PropsConfig{
			PortalWidth:  32,
			PortalHeight: 48,
			SwitchWidth:  24,
			SwitchHeight: 32,
		},
		World: WorldConfig{
			CellWidth:    32,
			CellHeight:   32,
			GemThreshold: 3,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     -1.5,
			MusicBPM:   112,
		},
		Levels: []LevelConfig{
			{
				Name:    "Punch Hills",
				Map:     "level1.txt",
				Spawn:   Point{X: 64, Y: 290},
				Enemies: []Point{{X: 704, Y: 196}, {X: 1504, Y: 292}},
				Portal:  Point{X: 60, Y: 272},
				Switch:  Point{X: 1412, Y: 288},
				Reveal:  RevealConfig{Col: 45, Row: 7, Code: "p"},
			},
			{
				Name:    "Spike Ridge",
				Map:     "level2.txt",
				Spawn:   Point{X: 72, Y: 290},
				Enemies: []Point{{X: 864, Y: 164}, {X: 1408, Y: 292}},
				Portal:  Point{X: 68, Y: 272},
				Switch:  Point{X: 324, Y: 288},
				Reveal:  RevealConfig{Col: 7, Row: 6, Code: "v"},
			},
		},
	}
}
