// Package config loads session settings from a YAML tuning file and
// RANGER_* environment variables, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/ranger/internal/game"
)

const EnvPrefix = "RANGER_"

type Config struct {
	Simulation game.SimConfig `yaml:"simulation" envPrefix:"SIM_"`
	Host       HostConfig     `yaml:"host"`
}

type HostConfig struct {
	// TickInterval is the real time between simulation ticks.
	TickInterval time.Duration `yaml:"tick_interval" env:"TICK_INTERVAL"`
	// ListenAddr enables the spectator websocket when set, e.g. ":8090".
	ListenAddr string `yaml:"listen_addr" env:"LISTEN_ADDR"`
	LogPrefix  string `yaml:"log_prefix" env:"LOG_PREFIX"`
}

func Default() Config {
	return Config{
		Simulation: game.DefaultSimConfig(),
		Host: HostConfig{
			TickInterval: 40 * time.Millisecond,
			LogPrefix:    "[RANGER] ",
		},
	}
}

func (c Config) Validate() error {
	if err := c.Simulation.Validate(); err != nil {
		return err
	}
	if c.Host.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.Host.TickInterval)
	}
	return nil
}

// Load reads path (optional; a missing file is not an error when path is
// empty) over the defaults, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s not found", path)
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
