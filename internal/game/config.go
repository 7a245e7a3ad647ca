package game

import (
	"fmt"
)

// SimConfig holds the tunables of a journey session. World geometry is not
// tunable: generated content depends on it.
type SimConfig struct {
	BaseSpeed          float64 `yaml:"base_speed" env:"BASE_SPEED"`
	InitialStat        float64 `yaml:"initial_stat" env:"INITIAL_STAT"`
	HomeX              float64 `yaml:"home_x" env:"HOME_X"`
	HomeY              float64 `yaml:"home_y" env:"HOME_Y"`
	BaseTimeMultiplier float64 `yaml:"base_time_multiplier" env:"BASE_TIME_MULTIPLIER"`
	HomeTimeMultiplier float64 `yaml:"home_time_multiplier" env:"HOME_TIME_MULTIPLIER"`
	DecisionMaxSeconds float64 `yaml:"decision_max_seconds" env:"DECISION_MAX_SECONDS"`
	MaxVisited         int     `yaml:"max_visited" env:"MAX_VISITED"`
	JournalSize        int     `yaml:"journal_size" env:"JOURNAL_SIZE"`
}

func DefaultSimConfig() SimConfig {
	return SimConfig{
		// m/s at full stats.
		BaseSpeed:          1,
		InitialStat:        10,
		BaseTimeMultiplier: 5,
		HomeTimeMultiplier: 10,
		DecisionMaxSeconds: 40,
		MaxVisited:         20,
		JournalSize:        50,
	}
}

func (c SimConfig) Validate() error {
	if c.BaseSpeed <= 0 {
		return fmt.Errorf("base speed must be positive, got %v", c.BaseSpeed)
	}
	if c.InitialStat < 0 {
		return fmt.Errorf("initial stat must not be negative, got %v", c.InitialStat)
	}
	if c.BaseTimeMultiplier <= 0 || c.HomeTimeMultiplier <= 0 {
		return fmt.Errorf("time multipliers must be positive, got base=%v home=%v", c.BaseTimeMultiplier, c.HomeTimeMultiplier)
	}
	if c.DecisionMaxSeconds <= 0 {
		return fmt.Errorf("decision max seconds must be positive, got %v", c.DecisionMaxSeconds)
	}
	if c.MaxVisited < 1 {
		return fmt.Errorf("max visited must be at least 1, got %d", c.MaxVisited)
	}
	if c.JournalSize < 0 {
		return fmt.Errorf("journal size must not be negative, got %d", c.JournalSize)
	}
	return nil
}
