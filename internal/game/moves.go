package game

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// ErrInvalidInput is wrapped by every rejected command.
var ErrInvalidInput = errors.New("invalid input")

// ErrAbandoned is returned by an Input when the player closes the game.
var ErrAbandoned = errors.New("game abandoned")

// InputError reports raw text that is not a legal command right now.
type InputError struct {
	Text string
}

func (e *InputError) Error() string {
	return "Invalid option: " + e.Text
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// MoveKind is the kind of command the player gives during a turn.
type MoveKind int

const (
	// MoveTake resolves the card at Move.Index
	MoveTake MoveKind = iota
	// MoveNextRoom leaves the last card and moves to the next room
	MoveNextRoom
	// MoveFlee returns the room to the deck
	MoveFlee
)

// String returns the command name.
func (k MoveKind) String() string {
	switch k {
	case MoveTake:
		return "take"
	case MoveNextRoom:
		return "next_room"
	case MoveFlee:
		return "flee"
	default:
		return "unknown"
	}
}

// Move is a validated player command.
type Move struct {
	Kind  MoveKind
	Index int // 0-based room position, MoveTake only
}

// Take returns the move that resolves the card at the 0-based index.
func Take(index int) Move { return Move{Kind: MoveTake, Index: index} }

// NextRoom returns the go-to-next-room move.
func NextRoom() Move { return Move{Kind: MoveNextRoom} }

// Flee returns the flee move.
func Flee() Move { return Move{Kind: MoveFlee} }

// Options is the exact set of legal moves at a prompt.
type Options struct {
	RoomSize  int  // cards 1..RoomSize may be taken
	CanMoveOn bool // "g" is legal
	CanFlee   bool // "f" is legal
}

// Allows reports whether the move is legal under these options.
func (o Options) Allows(m Move) bool {
	switch m.Kind {
	case MoveTake:
		return m.Index >= 0 && m.Index < o.RoomSize
	case MoveNextRoom:
		return o.CanMoveOn
	case MoveFlee:
		return o.CanFlee
	default:
		return false
	}
}

// Command letters, matched case-insensitively.
const (
	cmdNextRoom = "g"
	cmdFlee     = "f"
)

func normalize(text string) string {
	return cases.Fold().String(strings.TrimSpace(text))
}

// ParseMove turns raw text into a legal move: a 1-based card number, "g" or "f".
// Anything else, including commands not legal under opts, is an *InputError.
func ParseMove(text string, opts Options) (Move, error) {
	cmd := normalize(text)

	var m Move
	switch {
	case cmd == cmdNextRoom:
		m = NextRoom()
	case cmd == cmdFlee:
		m = Flee()
	case isDigits(cmd):
		n, err := strconv.Atoi(cmd)
		if err != nil {
			return Move{}, &InputError{Text: text}
		}
		m = Take(n - 1)
	default:
		return Move{}, &InputError{Text: text}
	}

	if !opts.Allows(m) {
		return Move{}, &InputError{Text: text}
	}
	return m, nil
}

// ParseConfirm accepts y, yes, n or no in any case.
func ParseConfirm(text string) (bool, error) {
	switch normalize(text) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, &InputError{Text: text}
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
