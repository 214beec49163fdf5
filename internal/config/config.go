// Package config centralizes all tunable game parameters.
package config

import (
	"fmt"
	"os"
)

// Config holds every startup-time game parameter. It is constructed once,
// validated, and passed by reference; nothing mutates it afterwards.
// Distances are in world cells, speeds in cells per second, durations in
// seconds.
type Config struct {
	// Pane geometry. Each player races inside their own pane; pane 2 sits
	// directly to the right of pane 1 in world coordinates.
	PaneWidth  float64
	PaneHeight float64

	// FinishLineY is the world height a snake head must reach to win.
	FinishLineY float64

	// Snake movement.
	BaseSpeed    float64 // Vertical climb speed before any boosts
	LateralSpeed float64 // Horizontal speed while steering
	SnakeSize    float64 // Side length of the head collision box

	// Power-ups.
	SpeedIncrement        float64 // Permanent climb speed gain per threshold
	ApplesPerBoost        int     // Red apples needed for one speed increment
	InvincibilitySeconds  float64 // Golden apple invincibility window
	ApplePoints           int     // Score for a red apple
	GoldenApplePoints     int     // Score for a golden apple

	// Spawning.
	SpawnLookahead  float64 // Margin above the visible top that triggers a spawn
	SpawnDistance   float64 // How far above the visible top new entities appear
	ObstacleWeight  int     // Relative spawn weights
	RedAppleWeight  int
	GoldenWeight    int
	MaxCollectibles int // Live collectible cap per pane

	// Initial seeding at match start.
	SeedObstacles    int
	SeedCollectibles int

	// ViewAnchor is the fraction of the pane height kept below the snake
	// head, so the snake sits in the lower part of its pane.
	ViewAnchor float64

	// Seed for the spawn random source. Zero means derive from the clock.
	Seed int64
}

// Default returns the standard game configuration.
func Default() Config {
	return Config{
		PaneWidth:  30,
		PaneHeight: 40,

		FinishLineY: 600,

		BaseSpeed:    8.0,
		LateralSpeed: 14.0,
		SnakeSize:    1.0,

		SpeedIncrement:       1.5,
		ApplesPerBoost:       3,
		InvincibilitySeconds: 3.0,
		ApplePoints:          10,
		GoldenApplePoints:    25,

		SpawnLookahead:  12,
		SpawnDistance:   18,
		ObstacleWeight:  5,
		RedAppleWeight:  4,
		GoldenWeight:    1,
		MaxCollectibles: 25,

		SeedObstacles:    12,
		SeedCollectibles: 8,

		ViewAnchor: 0.25,
	}
}

// Validate reports the first nonsensical parameter. A failed validation is
// fatal at startup: the game refuses to run with broken physics.
func (c Config) Validate() error {
	switch {
	case c.PaneWidth <= 0 || c.PaneHeight <= 0:
		return fmt.Errorf("invalid configuration: pane %gx%g must be positive", c.PaneWidth, c.PaneHeight)
	case c.FinishLineY <= 0:
		return fmt.Errorf("invalid configuration: finish line height %g must be positive", c.FinishLineY)
	case c.BaseSpeed <= 0:
		return fmt.Errorf("invalid configuration: base speed %g must be positive", c.BaseSpeed)
	case c.LateralSpeed < 0:
		return fmt.Errorf("invalid configuration: lateral speed %g must not be negative", c.LateralSpeed)
	case c.SnakeSize <= 0 || c.SnakeSize > c.PaneWidth:
		return fmt.Errorf("invalid configuration: snake size %g must fit the pane", c.SnakeSize)
	case c.SpeedIncrement < 0:
		return fmt.Errorf("invalid configuration: speed increment %g must not be negative", c.SpeedIncrement)
	case c.ApplesPerBoost <= 0:
		return fmt.Errorf("invalid configuration: apples per boost %d must be positive", c.ApplesPerBoost)
	case c.InvincibilitySeconds < 0:
		return fmt.Errorf("invalid configuration: invincibility duration %g must not be negative", c.InvincibilitySeconds)
	case c.SpawnLookahead <= 0 || c.SpawnDistance <= 0:
		return fmt.Errorf("invalid configuration: spawn lookahead %g and distance %g must be positive", c.SpawnLookahead, c.SpawnDistance)
	case c.SpawnDistance <= c.SpawnLookahead:
		return fmt.Errorf("invalid configuration: spawn distance %g must exceed lookahead %g or spawning never catches up", c.SpawnDistance, c.SpawnLookahead)
	case c.ObstacleWeight < 0 || c.RedAppleWeight < 0 || c.GoldenWeight < 0:
		return fmt.Errorf("invalid configuration: spawn weights must not be negative")
	case c.ObstacleWeight+c.RedAppleWeight+c.GoldenWeight == 0:
		return fmt.Errorf("invalid configuration: at least one spawn weight must be positive")
	case c.MaxCollectibles < 0:
		return fmt.Errorf("invalid configuration: collectible cap %d must not be negative", c.MaxCollectibles)
	case c.ViewAnchor <= 0 || c.ViewAnchor >= 1:
		return fmt.Errorf("invalid configuration: view anchor %g must be in (0, 1)", c.ViewAnchor)
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
