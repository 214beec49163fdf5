package entity

import (
	"github.com/tomz197/slither-sprint/internal/config"
	"github.com/tomz197/slither-sprint/internal/physics"
)

// Snake is a player's continuously climbing snake. The head always moves
// toward +y; steering only shifts it sideways within its pane.
type Snake struct {
	ID   PlayerID
	Pane Pane

	X, Y float64 // Bottom-left corner of the head box, world coordinates

	Alive       bool
	Invincible  float64 // Remaining invincibility in seconds
	Apples      int     // Red apples collected this match
	Score       int
	SpeedBoost  float64 // Permanent climb speed gained from apple thresholds

	steer int // -1, 0 or 1, applied on the next Advance

	cfg *config.Config
}

// NewSnake creates a snake at the bottom center of its pane.
func NewSnake(id PlayerID, pane Pane, cfg *config.Config) *Snake {
	return &Snake{
		ID:    id,
		Pane:  pane,
		X:     pane.Bounds.CenterX() - cfg.SnakeSize/2,
		Y:     0,
		Alive: true,
		cfg:   cfg,
	}
}

// Steer sets the lateral velocity sign for the next Advance. A dead snake
// ignores steering.
func (s *Snake) Steer(intent Intent) {
	if !s.Alive {
		return
	}
	switch intent {
	case IntentLeft:
		s.steer = -1
	case IntentRight:
		s.steer = 1
	default:
		s.steer = 0
	}
}

// Speed returns the current vertical climb speed.
func (s *Snake) Speed() float64 {
	return s.cfg.BaseSpeed + s.SpeedBoost
}

// Advance moves the snake by one timestep. The climb is strictly monotonic
// while alive; lateral movement clamps at the pane walls and never kills.
func (s *Snake) Advance(dt float64) {
	if !s.Alive || dt <= 0 {
		return
	}
	s.X += float64(s.steer) * s.cfg.LateralSpeed * dt
	s.X = physics.Clamp(s.X, s.Pane.Bounds.X, s.Pane.Bounds.Right()-s.cfg.SnakeSize)
	s.Y += s.Speed() * dt
}

// TickTimers decrements the invincibility countdown, clamped at zero.
func (s *Snake) TickTimers(dt float64) {
	if dt <= 0 {
		return
	}
	s.Invincible -= dt
	if s.Invincible < 0 {
		s.Invincible = 0
	}
}

// IsInvincible reports whether crashes are currently absorbed.
func (s *Snake) IsInvincible() bool {
	return s.Invincible > 0
}

// ApplyCollision mutates the snake according to a collision outcome.
// A crash during invincibility has no effect and does not touch the timer;
// the window simply runs out on its own.
func (s *Snake) ApplyCollision(outcome Outcome) {
	if !s.Alive {
		return
	}
	switch outcome {
	case OutcomeCrash:
		if !s.IsInvincible() {
			s.Alive = false
		}
	case OutcomeCollectRedApple:
		s.Apples++
		s.Score += s.cfg.ApplePoints
		if s.Apples%s.cfg.ApplesPerBoost == 0 {
			s.SpeedBoost += s.cfg.SpeedIncrement
		}
	case OutcomeCollectGoldenApple:
		s.Score += s.cfg.GoldenApplePoints
		s.Invincible = s.cfg.InvincibilitySeconds
	}
}

// Head returns the head collision box.
func (s *Snake) Head() physics.Rect {
	return physics.NewRect(s.X, s.Y, s.cfg.SnakeSize, s.cfg.SnakeSize)
}
