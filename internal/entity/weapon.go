package entity

import (
	"errors"
	"fmt"

	"github.com/samdwyer/scoundrel/internal/card"
)

// ErrInvalidCardKind is returned when a card is used as something it is not.
var ErrInvalidCardKind = errors.New("invalid card kind")

// Weapon is an equipped diamond together with the last enemy it defeated.
type Weapon struct {
	card      card.Card
	lastEnemy *card.Card
}

// NewWeapon wraps a weapon card. The new weapon has no last enemy.
func NewWeapon(c card.Card) (*Weapon, error) {
	if !c.IsWeapon() {
		return nil, fmt.Errorf("%w: %s is a %s card", ErrInvalidCardKind, c, c.Kind())
	}
	return &Weapon{card: c}, nil
}

// MustNewWeapon is like NewWeapon but panics on a non-weapon card.
// Use it where the caller has already checked the card kind.
func MustNewWeapon(c card.Card) *Weapon {
	w, err := NewWeapon(c)
	if err != nil {
		panic(err)
	}
	return w
}

// Card returns the underlying weapon card.
func (w *Weapon) Card() card.Card { return w.card }

// Rank returns the weapon's strength.
func (w *Weapon) Rank() int { return w.card.Rank() }

// LastEnemy returns the most recent enemy defeated with this weapon.
func (w *Weapon) LastEnemy() (card.Card, bool) {
	if w.lastEnemy == nil {
		return card.Card{}, false
	}
	return *w.lastEnemy, true
}

// CanDefeat reports whether the weapon may be used against the enemy.
// After its first kill a weapon only works on enemies strictly weaker than
// the last one it defeated.
func (w *Weapon) CanDefeat(enemy card.Card) bool {
	if w.lastEnemy == nil {
		return true
	}
	return w.lastEnemy.Rank() > enemy.Rank()
}

// DamageAgainst returns the damage that leaks through the weapon, min 0.
func (w *Weapon) DamageAgainst(enemy card.Card) int {
	return max(enemy.Rank()-w.card.Rank(), 0)
}

// RecordKill stacks the enemy on the weapon.
func (w *Weapon) RecordKill(enemy card.Card) {
	w.lastEnemy = &enemy
}

// String renders the weapon card.
func (w *Weapon) String() string {
	return w.card.String()
}
