package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPunchmanPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPunchmanPreset(cfg *PunchmanConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Player.Hits = 4
		cfg.Physics.EnemySpeed = scale(cfg.Physics.EnemySpeed, 0.75)
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Player.Hits = 2
		cfg.Physics.EnemySpeed = scale(cfg.Physics.EnemySpeed, 1.5)
		cfg.Player.Knockback *= 2
	}
}

// scale multiplies a speed, keeping it within a playable band.
func scale(v, factor float64) float64 {
	return clampF(v*factor, 0.02, 0.5)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
