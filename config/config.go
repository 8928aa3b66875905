// Package config holds the startup parameters of a game. Values are fixed once
// an engine is built from them.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/plus3/blockfall/tetris"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config describes the playfield, timing and scoring rules.
type Config struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`

	// Gravity is the initial time between automatic drops.
	Gravity     time.Duration `yaml:"gravity"`
	MoveDelay   time.Duration `yaml:"move_delay"`
	RotateDelay time.Duration `yaml:"rotate_delay"`

	// SoftDropFactor scales the initial gravity while soft drop is held.
	SoftDropFactor float64 `yaml:"soft_drop_factor"`
	// LevelSpeedup scales the fall duration on every level-up.
	LevelSpeedup float64 `yaml:"level_speedup"`

	ScoreTable    []uint64 `yaml:"score_table"`
	LinesPerLevel uint     `yaml:"lines_per_level"`
	QueueLength   int      `yaml:"queue_length"`
}

// Default returns the classic 10x18 rules.
func Default() Config {
	return Config{
		Columns:        10,
		Rows:           18,
		Gravity:        400 * time.Millisecond,
		MoveDelay:      200 * time.Millisecond,
		RotateDelay:    200 * time.Millisecond,
		SoftDropFactor: 0.3,
		LevelSpeedup:   0.7,
		ScoreTable:     slices.Clone(tetris.DefaultScoreTable[:]),
		LinesPerLevel:  10,
		QueueLength:    3,
	}
}

// Validate reports the first rule the config breaks.
func (c Config) Validate() error {
	switch {
	case c.Columns < 4:
		return fmt.Errorf("%w: columns must be at least 4, got %d", ErrInvalid, c.Columns)
	case c.Rows < 4:
		return fmt.Errorf("%w: rows must be at least 4, got %d", ErrInvalid, c.Rows)
	case c.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalid)
	case c.MoveDelay <= 0:
		return fmt.Errorf("%w: move_delay must be positive", ErrInvalid)
	case c.RotateDelay <= 0:
		return fmt.Errorf("%w: rotate_delay must be positive", ErrInvalid)
	case c.SoftDropFactor <= 0 || c.SoftDropFactor > 1:
		return fmt.Errorf("%w: soft_drop_factor must be in (0, 1], got %v", ErrInvalid, c.SoftDropFactor)
	case c.LevelSpeedup <= 0 || c.LevelSpeedup > 1:
		return fmt.Errorf("%w: level_speedup must be in (0, 1], got %v", ErrInvalid, c.LevelSpeedup)
	case len(c.ScoreTable) != len(tetris.ScoreTable{}):
		return fmt.Errorf("%w: score_table needs %d entries, got %d", ErrInvalid, len(tetris.ScoreTable{}), len(c.ScoreTable))
	case c.LinesPerLevel == 0:
		return fmt.Errorf("%w: lines_per_level must be positive", ErrInvalid)
	case c.QueueLength < 1:
		return fmt.Errorf("%w: queue_length must be at least 1, got %d", ErrInvalid, c.QueueLength)
	}
	return nil
}

// Scores returns the score table in its fixed-size form. Call it on a
// validated config.
func (c Config) Scores() tetris.ScoreTable {
	var t tetris.ScoreTable
	copy(t[:], c.ScoreTable)
	return t
}

// SoftDropGravity is the drop interval while soft drop is held.
func (c Config) SoftDropGravity() time.Duration {
	return tetris.Scale(c.Gravity, c.SoftDropFactor)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
