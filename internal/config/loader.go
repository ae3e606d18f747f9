package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "punchman.yaml"

// ErrInvalidConfig is returned when a loaded configuration cannot drive the game.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadPunchman loads the game configuration.
// Search order: customPath -> ~/.punchman/configs/punchman.yaml -> ./configs/punchman.yaml -> embedded default
func LoadPunchman(customPath string) (PunchmanConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PunchmanConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return PunchmanConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPunchmanYAML)
	if err != nil {
		return DefaultPunchmanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults and validates it.
// Sections missing from the document keep their default values.
func Parse(data []byte) (PunchmanConfig, error) {
	cfg := DefaultPunchmanConfig()
	// A document that lists levels replaces the default level set entirely
	cfg.Levels = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PunchmanConfig{}, err
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = DefaultPunchmanConfig().Levels
	}
	if err := cfg.Validate(); err != nil {
		return PunchmanConfig{}, err
	}
	return cfg, nil
}

// Validate checks the values the simulation cannot run without.
func (c PunchmanConfig) Validate() error {
	switch {
	case c.World.CellWidth <= 0 || c.World.CellHeight <= 0:
		return fmt.Errorf("%w: cell size %dx%d", ErrInvalidConfig, c.World.CellWidth, c.World.CellHeight)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size %vx%v", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	case c.Enemy.Width <= 0 || c.Enemy.Height <= 0:
		return fmt.Errorf("%w: enemy size %vx%v", ErrInvalidConfig, c.Enemy.Width, c.Enemy.Height)
	case c.Player.Hits <= 0 || c.Player.Lives <= 0:
		return fmt.Errorf("%w: hits and lives must be positive", ErrInvalidConfig)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidConfig)
	case len(c.Levels) == 0:
		return fmt.Errorf("%w: no levels", ErrInvalidConfig)
	}
	for i, l := range c.Levels {
		if l.Map == "" {
			return fmt.Errorf("%w: level %d has no map", ErrInvalidConfig, i+1)
		}
		if len(l.Reveal.Code) > 1 {
			return fmt.Errorf("%w: level %d reveal code %q is not a single character", ErrInvalidConfig, i+1, l.Reveal.Code)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".punchman", "configs", filename)
}
