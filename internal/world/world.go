// Package world manages one pane's scrolling window: camera offset,
// entity spawning ahead of the snake, and culling behind it.
package world

import (
	"math/rand"

	"github.com/tomz197/slither-sprint/internal/config"
	"github.com/tomz197/slither-sprint/internal/entity"
	"github.com/tomz197/slither-sprint/internal/physics"
)

// spawnAttempts bounds the rejection sampling for a free spawn cell.
const spawnAttempts = 8

// World holds the live entities and camera for a single pane. Each player
// has their own World; nothing is shared across panes.
type World struct {
	Pane entity.Pane

	Obstacles    []*entity.Obstacle
	Collectibles []*entity.Collectible

	// CameraY is the bottom of the visible window. It only ever rises.
	CameraY float64

	highest float64 // y of the highest entity spawned so far

	cfg *config.Config
	rng *rand.Rand
}

// New creates an empty world for the given pane. The random source is
// injected so tests can reproduce spawn sequences.
func New(pane entity.Pane, cfg *config.Config, rng *rand.Rand) *World {
	return &World{Pane: pane, cfg: cfg, rng: rng}
}

// Reset clears all entities, rewinds the camera and seeds the initial
// obstacle and collectible batch above the start line.
func (w *World) Reset() {
	w.Obstacles = w.Obstacles[:0]
	w.Collectibles = w.Collectibles[:0]
	w.CameraY = 0
	w.highest = 0

	lo := w.cfg.SpawnDistance
	hi := w.cfg.PaneHeight + w.cfg.SpawnDistance
	for i := 0; i < w.cfg.SeedObstacles; i++ {
		w.spawnObstacle(lo + w.rng.Float64()*(hi-lo))
	}
	for i := 0; i < w.cfg.SeedCollectibles; i++ {
		w.spawnCollectible(lo+w.rng.Float64()*(hi-lo), w.rollCollectibleKind())
	}
	w.highest = hi
}

// FollowCamera moves the camera so the head sits at the viewport anchor.
// The camera never scrolls backward, even though the snake cannot descend.
func (w *World) FollowCamera(headY float64) {
	target := headY - w.cfg.ViewAnchor*w.cfg.PaneHeight
	if target > w.CameraY {
		w.CameraY = target
	}
}

// Top returns the top of the visible window.
func (w *World) Top() float64 {
	return w.CameraY + w.cfg.PaneHeight
}

// Update spawns new entities once the highest one falls inside the
// lookahead margin of the visible top, keeping the road ahead populated.
func (w *World) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for w.highest < w.Top()+w.cfg.SpawnLookahead {
		w.spawnOne(w.Top() + w.cfg.SpawnDistance)
	}
}

// Cull removes entities that have scrolled below the visible bottom, plus
// any consumed collectibles. Keeps memory bounded.
func (w *World) Cull() {
	keptObs := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if o.Box.Top() >= w.CameraY {
			keptObs = append(keptObs, o)
		}
	}
	w.Obstacles = keptObs

	keptCol := w.Collectibles[:0]
	for _, c := range w.Collectibles {
		if !c.Consumed && c.Box.Top() >= w.CameraY {
			keptCol = append(keptCol, c)
		}
	}
	w.Collectibles = keptCol
}

// spawnOne places a single weighted-random entity at the given height.
// The spawn height always counts toward the lookahead trigger even when
// placement fails, so a crowded row cannot stall the spawner.
func (w *World) spawnOne(y float64) {
	if y > w.highest {
		w.highest = y
	}

	total := w.cfg.ObstacleWeight + w.cfg.RedAppleWeight + w.cfg.GoldenWeight
	roll := w.rng.Intn(total)
	switch {
	case roll < w.cfg.ObstacleWeight:
		w.spawnObstacle(y)
	case roll < w.cfg.ObstacleWeight+w.cfg.RedAppleWeight:
		w.spawnCollectible(y, entity.RedApple)
	default:
		w.spawnCollectible(y, entity.GoldenApple)
	}
}

func (w *World) rollCollectibleKind() entity.CollectibleKind {
	total := w.cfg.RedAppleWeight + w.cfg.GoldenWeight
	if total > 0 && w.rng.Intn(total) >= w.cfg.RedAppleWeight {
		return entity.GoldenApple
	}
	return entity.RedApple
}

// spawnObstacle places a 1-3 cell wide obstacle at height y. Placement is
// rejected where it would overlap a collectible: an apple buried inside a
// wall would be unwinnable.
func (w *World) spawnObstacle(y float64) {
	cell := w.cfg.SnakeSize
	span := float64(1+w.rng.Intn(3)) * cell
	if span > w.cfg.PaneWidth {
		span = w.cfg.PaneWidth
	}

	for attempt := 0; attempt < spawnAttempts; attempt++ {
		x := w.Pane.Bounds.X + w.rng.Float64()*(w.cfg.PaneWidth-span)
		box := physics.NewRect(x, y, span, cell)
		if w.overlapsCollectible(box) {
			continue
		}
		w.Obstacles = append(w.Obstacles, &entity.Obstacle{PaneID: w.Pane.ID, Box: box})
		return
	}
}

// spawnCollectible places a single-cell collectible at height y, avoiding
// obstacles and other collectibles, and respecting the live cap.
func (w *World) spawnCollectible(y float64, kind entity.CollectibleKind) {
	if len(w.Collectibles) >= w.cfg.MaxCollectibles {
		return
	}
	cell := w.cfg.SnakeSize

	for attempt := 0; attempt < spawnAttempts; attempt++ {
		x := w.Pane.Bounds.X + w.rng.Float64()*(w.cfg.PaneWidth-cell)
		box := physics.NewRect(x, y, cell, cell)
		if w.overlapsObstacle(box) || w.overlapsCollectible(box) {
			continue
		}
		w.Collectibles = append(w.Collectibles, &entity.Collectible{
			PaneID: w.Pane.ID,
			Box:    box,
			Kind:   kind,
		})
		return
	}
}

func (w *World) overlapsObstacle(box physics.Rect) bool {
	for _, o := range w.Obstacles {
		if o.Box.Intersects(box) {
			return true
		}
	}
	return false
}

func (w *World) overlapsCollectible(box physics.Rect) bool {
	for _, c := range w.Collectibles {
		if !c.Consumed && c.Box.Intersects(box) {
			return true
		}
	}
	return false
}
