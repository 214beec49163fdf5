// Package match owns the full state of a two-player race: both snakes,
// both pane worlds, the win/draw state machine and restarts. The host loop
// calls Update once per frame; renderers only ever see snapshots.
package match

import (
	"math/rand"
	"time"

	"github.com/tomz197/slither-sprint/internal/config"
	"github.com/tomz197/slither-sprint/internal/entity"
	"github.com/tomz197/slither-sprint/internal/world"
)

// Phase is the match state machine phase.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseFinished
)

// Winner identifies the outcome of a finished match.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerP1
	WinnerP2
	WinnerDraw
)

// String returns the winner name for HUDs and logs.
func (w Winner) String() string {
	switch w {
	case WinnerP1:
		return "Player 1"
	case WinnerP2:
		return "Player 2"
	case WinnerDraw:
		return "Draw"
	default:
		return "None"
	}
}

// TickInput carries both players' steering intents for one tick.
type TickInput struct {
	P1, P2 entity.Intent
}

// Controller drives one fixed-order simulation step per frame tick and
// owns all match state exclusively.
type Controller struct {
	cfg    *config.Config
	finish entity.FinishLine

	snake1, snake2 *entity.Snake
	world1, world2 *world.World

	phase  Phase
	winner Winner
	paused bool

	// Round tally across restarts within one process. Draws award nothing.
	wins [2]int

	restartRequested bool
}

// New validates the configuration and builds a fresh match. A nil error
// guarantees sane physics for the lifetime of the controller.
func New(cfg *config.Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	pane1 := entity.Pane{ID: entity.Player1}
	pane1.Bounds.W = cfg.PaneWidth
	pane2 := entity.Pane{ID: entity.Player2}
	pane2.Bounds.X = cfg.PaneWidth
	pane2.Bounds.W = cfg.PaneWidth

	c := &Controller{
		cfg:    cfg,
		finish: entity.FinishLine{Y: cfg.FinishLineY},
		world1: world.New(pane1, cfg, rng),
		world2: world.New(pane2, cfg, rng),
	}
	c.reset()
	return c, nil
}

// reset reinitializes everything except the round tally.
func (c *Controller) reset() {
	c.snake1 = entity.NewSnake(entity.Player1, c.world1.Pane, c.cfg)
	c.snake2 = entity.NewSnake(entity.Player2, c.world2.Pane, c.cfg)
	c.world1.Reset()
	c.world2.Reset()
	c.phase = PhaseRunning
	c.winner = WinnerNone
	c.paused = false
}

// Phase returns the current match phase.
func (c *Controller) Phase() Phase { return c.phase }

// Winner returns the match outcome, or WinnerNone while running.
func (c *Controller) Winner() Winner { return c.winner }

// Paused reports whether the simulation is paused.
func (c *Controller) Paused() bool { return c.paused }

// RequestRestart flags a restart. The reset happens at the next tick
// boundary, never mid-tick.
func (c *Controller) RequestRestart() {
	c.restartRequested = true
}

// TogglePause flips the pause state. Pausing freezes physics without
// losing any match state; a finished match ignores pause.
func (c *Controller) TogglePause() {
	if c.phase == PhaseRunning {
		c.paused = !c.paused
	}
}

// Update runs one simulation tick. The step order is fixed: steering,
// advance, timers, collisions, world scroll/spawn, finish evaluation.
// Once finished, physics stays frozen until a restart.
func (c *Controller) Update(dt float64, in TickInput) {
	if c.restartRequested {
		c.restartRequested = false
		c.reset()
	}
	if c.phase == PhaseFinished || c.paused || dt <= 0 {
		return
	}

	// (1) steering intents
	c.snake1.Steer(in.P1)
	c.snake2.Steer(in.P2)

	// (2) advance both snakes
	c.snake1.Advance(dt)
	c.snake2.Advance(dt)

	// (3) invincibility timers
	c.snake1.TickTimers(dt)
	c.snake2.TickTimers(dt)

	// (4) collisions, each snake against its own pane, then head-to-head
	c.resolveCollisions(c.snake1, c.world1)
	c.resolveCollisions(c.snake2, c.world2)
	c.resolveHeadToHead()

	// (5) scroll, spawn ahead, cull behind
	c.world1.FollowCamera(c.snake1.Y)
	c.world2.FollowCamera(c.snake2.Y)
	c.world1.Update(dt)
	c.world2.Update(dt)
	c.world1.Cull()
	c.world2.Cull()

	// (6) finish and draw transitions
	c.evaluateFinish()
}

// resolveCollisions applies the outcome of one snake's overlaps. Obstacles
// are checked before collectibles: a snake that dies in a cell does not
// also score from it.
func (c *Controller) resolveCollisions(s *entity.Snake, w *world.World) {
	if !s.Alive {
		return
	}
	head := s.Head()

	for _, o := range w.Obstacles {
		if o.Box.Intersects(head) {
			s.ApplyCollision(entity.OutcomeCrash)
			if !s.Alive {
				return
			}
			break
		}
	}

	for _, col := range w.Collectibles {
		if !col.Consumed && col.Box.Intersects(head) {
			col.Consumed = true
			s.ApplyCollision(col.Outcome())
		}
	}
}

// resolveHeadToHead crashes both snakes when their head boxes overlap.
// With disjoint panes this cannot fire; it exists so overlapping pane
// layouts stay correct.
func (c *Controller) resolveHeadToHead() {
	if !c.snake1.Alive || !c.snake2.Alive {
		return
	}
	if c.snake1.Head().Intersects(c.snake2.Head()) {
		c.snake1.ApplyCollision(entity.OutcomeCrash)
		c.snake2.ApplyCollision(entity.OutcomeCrash)
	}
}

// evaluateFinish applies the win/draw rules. Simultaneous finish-line
// crossings and simultaneous deaths are both draws; the draw rule takes
// precedence, so no player-index tie-break can decide a finish.
func (c *Controller) evaluateFinish() {
	p1Finished := c.snake1.Alive && c.finish.Reached(c.snake1.Head())
	p2Finished := c.snake2.Alive && c.finish.Reached(c.snake2.Head())

	switch {
	case p1Finished && p2Finished:
		c.finishMatch(WinnerDraw)
	case p1Finished:
		c.finishMatch(WinnerP1)
	case p2Finished:
		c.finishMatch(WinnerP2)
	case !c.snake1.Alive && !c.snake2.Alive:
		c.finishMatch(WinnerDraw)
	case !c.snake1.Alive:
		c.finishMatch(WinnerP2)
	case !c.snake2.Alive:
		c.finishMatch(WinnerP1)
	}
}

func (c *Controller) finishMatch(w Winner) {
	c.phase = PhaseFinished
	c.winner = w
	switch w {
	case WinnerP1:
		c.wins[0]++
	case WinnerP2:
		c.wins[1]++
	}
}
