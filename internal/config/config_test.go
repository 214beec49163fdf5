package config

import "testing"

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBrokenPhysics(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero pane width", func(c *Config) { c.PaneWidth = 0 }},
		{"negative pane height", func(c *Config) { c.PaneHeight = -5 }},
		{"zero base speed", func(c *Config) { c.BaseSpeed = 0 }},
		{"negative base speed", func(c *Config) { c.BaseSpeed = -1 }},
		{"zero finish line", func(c *Config) { c.FinishLineY = 0 }},
		{"zero apple threshold", func(c *Config) { c.ApplesPerBoost = 0 }},
		{"negative invincibility", func(c *Config) { c.InvincibilitySeconds = -1 }},
		{"snake wider than pane", func(c *Config) { c.SnakeSize = c.PaneWidth + 1 }},
		{"zero spawn lookahead", func(c *Config) { c.SpawnLookahead = 0 }},
		{"spawn distance inside lookahead", func(c *Config) { c.SpawnDistance = c.SpawnLookahead }},
		{"all weights zero", func(c *Config) {
			c.ObstacleWeight, c.RedAppleWeight, c.GoldenWeight = 0, 0, 0
		}},
		{"negative weight", func(c *Config) { c.RedAppleWeight = -1 }},
		{"anchor at one", func(c *Config) { c.ViewAnchor = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SLITHER_TEST_KEY", "set")
	if got := GetEnv("SLITHER_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("GetEnv for set key = %q, want %q", got, "set")
	}
	if got := GetEnv("SLITHER_TEST_KEY_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv for missing key = %q, want %q", got, "fallback")
	}
}
