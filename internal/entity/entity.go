// Package entity defines the game entities and their per-tick update rules.
package entity

import "github.com/tomz197/slither-sprint/internal/physics"

// PlayerID identifies one of the two players.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Intent is the discrete steering input for a single tick.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
)

// String returns the intent name for logs and test failures.
func (i Intent) String() string {
	switch i {
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	default:
		return "None"
	}
}

// Outcome is the result of a collision check, resolved by a single switch
// rather than per-entity dispatch so the ordering stays auditable.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCrash
	OutcomeCollectRedApple
	OutcomeCollectGoldenApple
)

// Pane is one player's half of the split-screen world. Both panes share the
// vertical axis; they are disjoint ranges on the horizontal axis.
type Pane struct {
	ID     PlayerID
	Bounds physics.Rect // Y and H are unused; panes span all heights
}

// Inside reports whether x lies within the pane's horizontal range.
func (p Pane) Inside(x float64) bool {
	return x >= p.Bounds.X && x < p.Bounds.Right()
}

// FinishLine is the world-y threshold a snake head must reach to win.
// Both panes share a single line.
type FinishLine struct {
	Y float64
}

// Reached reports whether the given head box has crossed the line.
func (f FinishLine) Reached(head physics.Rect) bool {
	return head.Top() >= f.Y
}
