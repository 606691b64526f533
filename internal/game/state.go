// Package game provides the room/turn state machine that runs a Scoundrel game.
package game

// Phase represents where the engine is in a game.
type Phase int

const (
	// PhaseRoomStart - room has just been refilled
	PhaseRoomStart Phase = iota
	// PhaseResolving - waiting for the player to pick a card or command
	PhaseResolving
	// PhaseFled - room was shuffled back into the deck
	PhaseFled
	// PhaseRoomCleared - player moved on with one card left
	PhaseRoomCleared
	// PhaseVictory - dungeon exhausted with the player alive
	PhaseVictory
	// PhaseDefeat - health reached zero
	PhaseDefeat
	// PhaseAbandoned - player closed the game before it ended
	PhaseAbandoned
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRoomStart:
		return "room_start"
	case PhaseResolving:
		return "resolving"
	case PhaseFled:
		return "fled"
	case PhaseRoomCleared:
		return "room_cleared"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	case PhaseAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// IsOver reports whether the game has ended.
func (p Phase) IsOver() bool {
	return p == PhaseVictory || p == PhaseDefeat || p == PhaseAbandoned
}
