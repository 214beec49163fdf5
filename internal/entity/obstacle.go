package entity

import "github.com/tomz197/slither-sprint/internal/physics"

// Obstacle is a fatal block. Obstacles only ever spawn above the visible
// top of their pane and are culled once they scroll off the bottom.
type Obstacle struct {
	PaneID PlayerID
	Box    physics.Rect
}

// CollectibleKind tags a collectible variant.
type CollectibleKind int

const (
	RedApple CollectibleKind = iota
	GoldenApple
)

// String returns the kind name.
func (k CollectibleKind) String() string {
	if k == GoldenApple {
		return "GoldenApple"
	}
	return "RedApple"
}

// Collectible is a pickup sharing the obstacle spawn/scroll lifecycle.
// Once consumed it is removed immediately, so it can never be collected
// twice.
type Collectible struct {
	PaneID   PlayerID
	Box      physics.Rect
	Kind     CollectibleKind
	Consumed bool
}

// Outcome maps the collectible kind to its collision outcome.
func (c *Collectible) Outcome() Outcome {
	if c.Kind == GoldenApple {
		return OutcomeCollectGoldenApple
	}
	return OutcomeCollectRedApple
}
