// Package config provides YAML-based configuration loading and difficulty
// presets for Punch Man.
package config

// PunchmanConfig contains all configuration for the game.
type PunchmanConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Props   PropsConfig   `yaml:"props"`
	World   WorldConfig   `yaml:"world"`
	Audio   AudioConfig   `yaml:"audio"`
	Levels  []LevelConfig `yaml:"levels"`
}

// PhysicsConfig defines motion parameters.
// Speeds are pixels per millisecond, gravity is pixels per millisecond squared.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	Lift         float64 `yaml:"lift"` // Initial jump velocity (negative is up)
	RunSpeed     float64 `yaml:"run_speed"`
	EnemySpeed   float64 `yaml:"enemy_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // 0 disables the clamp
	MaxFrameMs   int     `yaml:"max_frame_ms"`   // Longest single simulation step
}

// PlayerConfig defines the player's body and stats.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Hits          int     `yaml:"hits"`
	Lives         int     `yaml:"lives"`
	Knockback     float64 `yaml:"knockback"`
	AttackFrames  int     `yaml:"attack_frames"`
	AttackFrameMs float64 `yaml:"attack_frame_ms"`
}

// EnemyConfig defines the enemy body.
type EnemyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PropsConfig defines portal and switch sizes.
type PropsConfig struct {
	PortalWidth  float64 `yaml:"portal_width"`
	PortalHeight float64 `yaml:"portal_height"`
	SwitchWidth  float64 `yaml:"switch_width"`
	SwitchHeight float64 `yaml:"switch_height"`
}

// WorldConfig defines grid geometry and progression.
type WorldConfig struct {
	CellWidth    int `yaml:"cell_width"`
	CellHeight   int `yaml:"cell_height"`
	GemThreshold int `yaml:"gem_threshold"` // Gems needed to open the portal
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // Gain exponent, base 2 (0 = unchanged, -1 = half)
	MusicBPM   int     `yaml:"music_bpm"`
}

// Point is a pixel position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RevealConfig is the cell rewritten by a level's switch.
type RevealConfig struct {
	Col  int    `yaml:"col"`
	Row  int    `yaml:"row"`
	Code string `yaml:"code"` // Single map character
}

// LevelConfig describes one level: its map file and entity placement.
type LevelConfig struct {
	Name    string       `yaml:"name"`
	Map     string       `yaml:"map"` // Map file name, resolved by the level loader
	Spawn   Point        `yaml:"spawn"`
	Enemies []Point      `yaml:"enemies"`
	Portal  Point        `yaml:"portal"`
	Switch  Point        `yaml:"switch"`
	Reveal  RevealConfig `yaml:"reveal"`
}
