package game

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultSimConfigIsValid(t *testing.T) {
	if err := DefaultSimConfig().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestSimConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SimConfig)
		want   string
	}{
		{"zero speed", func(c *SimConfig) { c.BaseSpeed = 0 }, "base speed"},
		{"negative stat", func(c *SimConfig) { c.InitialStat = -1 }, "initial stat"},
		{"zero home multiplier", func(c *SimConfig) { c.HomeTimeMultiplier = 0 }, "time multipliers"},
		{"zero decision time", func(c *SimConfig) { c.DecisionMaxSeconds = 0 }, "decision max seconds"},
		{"no visited memory", func(c *SimConfig) { c.MaxVisited = 0 }, "max visited"},
		{"negative journal", func(c *SimConfig) { c.JournalSize = -1 }, "journal size"},
	}
	for _, tc := range tests {
		cfg := DefaultSimConfig()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error mentioning %q, got %v", tc.name, tc.want, err)
		}
	}
}

func TestFakeClockAdvances(t *testing.T) {
	start := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start)
	clock.Advance(90 * time.Minute)
	if got := clock.Now(); !got.Equal(start.Add(90 * time.Minute)) {
		t.Fatalf("expected %s, got %s", start.Add(90*time.Minute), got)
	}
	clock.Set(start)
	if got := clock.Now(); !got.Equal(start) {
		t.Fatalf("expected reset to %s, got %s", start, got)
	}
}
