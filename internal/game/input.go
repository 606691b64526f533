package game

import (
	"context"

	"github.com/samdwyer/scoundrel/internal/card"
)

// Input is the presentation side of a game. It shows the state and returns
// only commands that are legal under the options it was given; anything the
// player types that is not legal is rejected and re-prompted by the Input.
// Returning ErrAbandoned ends the game early.
type Input interface {
	// ChooseAction blocks until the player picks a legal move.
	ChooseAction(ctx context.Context, opts Options) (Move, error)
	// Confirm blocks until the player answers yes or no.
	Confirm(ctx context.Context, prompt string) (bool, error)
	// Render displays the current state.
	Render(s Snapshot)
}

// Snapshot is a read-only copy of the game for rendering.
type Snapshot struct {
	SessionID string
	Phase     Phase
	Turn      int
	Health    int
	MaxHealth int
	Weapon    *card.Card
	LastEnemy *card.Card
	Room      []card.Card
	DeckSize  int
	Options   Options
	Log       []string // most recent narration, oldest first
}
