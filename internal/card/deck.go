package card

import "math/rand"

// DeckSize is the number of cards in a fresh Scoundrel deck.
const DeckSize = 44

// deckSuits fixes the construction order of a fresh deck.
var deckSuits = []Suit{Diamonds, Hearts, Spades, Clubs}

// Deck is the dungeon: cards are dealt from the front and fled rooms are
// returned to the back.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck returns an unshuffled 44-card deck: diamonds 2-10, hearts 2-10,
// spades 2-A and clubs 2-A.
func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range deckSuits {
		for rank := MinRank; rank <= suitRules[suit].maxRank; rank++ {
			cards = append(cards, Card{suit: suit, rank: rank})
		}
	}
	return &Deck{cards: cards, rng: rng}
}

// NewDeckFrom returns a deck holding exactly the given cards, front first.
// Used to stage specific dungeons.
func NewDeckFrom(rng *rand.Rand, cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards)), rng: rng}
	copy(d.cards, cards)
	return d
}

// Shuffle randomly permutes the remaining cards in place.
func (d *Deck) Shuffle() {
	shuffle(d.rng, d.cards)
}

// Deal removes and returns up to n cards from the front of the deck.
// Returns fewer if the deck is short, and never pads.
func (d *Deck) Deal(n int) []Card {
	if n <= 0 {
		return nil
	}
	if n > len(d.cards) {
		n = len(d.cards)
	}
	dealt := make([]Card, n)
	copy(dealt, d.cards[:n])
	d.cards = d.cards[n:]
	return dealt
}

// ReturnAndShuffle shuffles the given cards and appends them to the back of
// the deck. The caller's slice is not modified.
func (d *Deck) ReturnAndShuffle(cards []Card) {
	returned := make([]Card, len(cards))
	copy(returned, cards)
	shuffle(d.rng, returned)
	d.cards = append(d.cards, returned...)
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Empty reports whether no cards remain.
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, front first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

func shuffle(rng *rand.Rand, cards []Card) {
	swap := func(i, j int) { cards[i], cards[j] = cards[j], cards[i] }
	if rng == nil {
		rand.Shuffle(len(cards), swap)
		return
	}
	rng.Shuffle(len(cards), swap)
}
