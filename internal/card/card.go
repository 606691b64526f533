// Package card provides the Scoundrel card model and the 44-card dungeon deck.
package card

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidCard is returned when a card cannot exist in a Scoundrel deck.
var ErrInvalidCard = errors.New("invalid card")

// Kind is what a card does when the player takes it.
type Kind int

const (
	// KindEnemy deals its rank as damage unless mitigated by a weapon.
	KindEnemy Kind = iota
	// KindWeapon replaces the equipped weapon.
	KindWeapon
	// KindHealth restores its rank in health, once per turn.
	KindHealth
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindWeapon:
		return "weapon"
	case KindHealth:
		return "health"
	default:
		return "unknown"
	}
}

// Suit is a card suit. The suit alone decides the card's Kind.
type Suit int

const (
	// Hearts - health potions
	Hearts Suit = iota
	// Diamonds - weapons
	Diamonds
	// Spades - enemies
	Spades
	// Clubs - enemies
	Clubs
)

// Symbol returns the suit's glyph.
func (s Suit) Symbol() rune {
	switch s {
	case Hearts:
		return '♥'
	case Diamonds:
		return '♦'
	case Spades:
		return '♠'
	case Clubs:
		return '♣'
	default:
		return '?'
	}
}

// String returns the suit name.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Spades:
		return "spades"
	case Clubs:
		return "clubs"
	default:
		return "unknown"
	}
}

// Rank bounds. Ranks 11-14 are the face cards J, Q, K and A.
const (
	MinRank = 2
	MaxRank = 14
)

// suitRule is one row of the fixed deck composition table.
type suitRule struct {
	kind    Kind
	maxRank int
}

// suitRules maps each suit to its kind and highest rank present in the deck.
// Red face cards and red aces are removed from a Scoundrel deck.
var suitRules = map[Suit]suitRule{
	Diamonds: {kind: KindWeapon, maxRank: 10},
	Hearts:   {kind: KindHealth, maxRank: 10},
	Spades:   {kind: KindEnemy, maxRank: MaxRank},
	Clubs:    {kind: KindEnemy, maxRank: MaxRank},
}

// Card is an immutable Scoundrel card.
type Card struct {
	suit Suit
	rank int
}

// New returns the card of the given suit and rank, or ErrInvalidCard when the
// card is not part of a Scoundrel deck.
func New(suit Suit, rank int) (Card, error) {
	rule, ok := suitRules[suit]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit %d", ErrInvalidCard, suit)
	}
	if rank < MinRank || rank > rule.maxRank {
		return Card{}, fmt.Errorf("%w: rank %d out of range for %s", ErrInvalidCard, rank, suit)
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustNew is like New but panics on an invalid card.
func MustNew(suit Suit, rank int) Card {
	c, err := New(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Suit returns the card's suit.
func (c Card) Suit() Suit { return c.suit }

// Rank returns the card's rank, 2-14.
func (c Card) Rank() int { return c.rank }

// Kind returns the card's kind, derived from its suit.
func (c Card) Kind() Kind { return suitRules[c.suit].kind }

// IsEnemy reports whether the card is an enemy.
func (c Card) IsEnemy() bool { return c.Kind() == KindEnemy }

// IsWeapon reports whether the card is a weapon.
func (c Card) IsWeapon() bool { return c.Kind() == KindWeapon }

// String renders the card as rank followed by suit glyph, e.g. "Q♠".
func (c Card) String() string {
	return RankLabel(c.rank) + string(c.suit.Symbol())
}

// RankLabel returns the display label for a rank.
func RankLabel(rank int) string {
	switch rank {
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	case 14:
		return "A"
	default:
		return strconv.Itoa(rank)
	}
}
