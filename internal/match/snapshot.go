package match

import (
	"github.com/tomz197/slither-sprint/internal/entity"
	"github.com/tomz197/slither-sprint/internal/world"
)

// BoxView is an entity box in pane-relative coordinates: x measured from
// the pane's left edge, y from the bottom of the visible window.
type BoxView struct {
	X, Y float64
	W, H float64
}

// CollectibleView is a visible collectible.
type CollectibleView struct {
	BoxView
	Kind entity.CollectibleKind
}

// SnakeView is one player's snake as seen by a renderer.
type SnakeView struct {
	ID         entity.PlayerID
	X, Y       float64 // Pane-relative head position
	WorldY     float64 // Absolute climb height, for progress displays
	Speed      float64
	Score      int
	Apples     int
	Alive      bool
	Invincible float64
}

// PaneSnapshot is the visible slice of one pane.
type PaneSnapshot struct {
	Snake        SnakeView
	Obstacles    []BoxView
	Collectibles []CollectibleView
	CameraY      float64
	FinishY      float64 // Pane-relative finish line height; may be off-screen
}

// Snapshot is an immutable copy of the match state for rendering. The
// renderer never touches live entities.
type Snapshot struct {
	Phase  Phase
	Winner Winner
	Paused bool
	Wins   [2]int
	Panes  [2]PaneSnapshot
}

// Snapshot builds a read-only copy of the current state. Entities outside
// the visible window are omitted.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Phase:  c.phase,
		Winner: c.winner,
		Paused: c.paused,
		Wins:   c.wins,
		Panes: [2]PaneSnapshot{
			c.paneSnapshot(c.snake1, c.world1),
			c.paneSnapshot(c.snake2, c.world2),
		},
	}
}

func (c *Controller) paneSnapshot(s *entity.Snake, w *world.World) PaneSnapshot {
	paneX := w.Pane.Bounds.X
	camY := w.CameraY
	top := w.Top()

	ps := PaneSnapshot{
		Snake: SnakeView{
			ID:         s.ID,
			X:          s.X - paneX,
			Y:          s.Y - camY,
			WorldY:     s.Y,
			Speed:      s.Speed(),
			Score:      s.Score,
			Apples:     s.Apples,
			Alive:      s.Alive,
			Invincible: s.Invincible,
		},
		CameraY: camY,
		FinishY: c.finish.Y - camY,
	}

	for _, o := range w.Obstacles {
		if o.Box.Top() < camY || o.Box.Y > top {
			continue
		}
		ps.Obstacles = append(ps.Obstacles, BoxView{
			X: o.Box.X - paneX,
			Y: o.Box.Y - camY,
			W: o.Box.W,
			H: o.Box.H,
		})
	}
	for _, col := range w.Collectibles {
		if col.Consumed || col.Box.Top() < camY || col.Box.Y > top {
			continue
		}
		ps.Collectibles = append(ps.Collectibles, CollectibleView{
			BoxView: BoxView{
				X: col.Box.X - paneX,
				Y: col.Box.Y - camY,
				W: col.Box.W,
				H: col.Box.H,
			},
			Kind: col.Kind,
		})
	}
	return ps
}
