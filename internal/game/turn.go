package game

// RoomSize is the number of cards a room is refilled to.
const RoomSize = 4

// TurnState is everything the rules need to know about the current turn.
type TurnState struct {
	Number       int  // 1-based turn counter
	FledLastTurn bool // previous turn ended by fleeing
	PotionUsed   bool // a potion already healed this turn
}

// TurnOutcome records how a turn ended.
type TurnOutcome struct {
	Resolved int  // cards taken this turn
	Fled     bool // turn ended by fleeing
	MovedOn  bool // turn ended with one card carried over
	Died     bool // health reached zero during the turn
}

// CanFlee reports whether fleeing is allowed this turn.
func (s TurnState) CanFlee() bool {
	return !s.FledLastTurn
}

// Next folds a finished turn into the state the following turn starts with.
// The potion allowance resets and only the flee flag carries over.
func (s TurnState) Next(o TurnOutcome) TurnState {
	return TurnState{
		Number:       s.Number + 1,
		FledLastTurn: o.Fled,
	}
}

// DealCount returns how many cards refill a room holding roomLen cards.
func DealCount(roomLen int) int {
	return max(RoomSize-roomLen, 0)
}
