// Package entity provides the player and the weapon they carry.
package entity

import "github.com/samdwyer/scoundrel/internal/card"

// MaxHealth is the player's starting and maximum health.
const MaxHealth = 20

// Player is the lone scoundrel crawling through the dungeon.
type Player struct {
	Health int
	weapon *Weapon
}

// NewPlayer creates a player at full health with no weapon.
func NewPlayer() *Player {
	return &Player{Health: MaxHealth}
}

// IsAlive returns true if the player has health remaining.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// ApplyDamage reduces health, never below zero, and returns actual damage taken.
func (p *Player) ApplyDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.Health {
		actual = p.Health
	}
	p.Health -= actual
	return actual
}

// Heal restores health, never above MaxHealth, and returns actual amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if p.Health+actual > MaxHealth {
		actual = MaxHealth - p.Health
	}
	p.Health += actual
	return actual
}

// Weapon returns the equipped weapon, or nil.
func (p *Player) Weapon() *Weapon { return p.weapon }

// EquipWeapon replaces the current weapon with a fresh one made from the card
// and returns the weapon that was discarded, if any. It panics if the card is
// not a weapon.
func (p *Player) EquipWeapon(c card.Card) *Weapon {
	old := p.weapon
	p.weapon = MustNewWeapon(c)
	return old
}

// CanUseWeaponOn reports whether the player holds a weapon that may fight the enemy.
func (p *Player) CanUseWeaponOn(enemy card.Card) bool {
	return p.weapon != nil && p.weapon.CanDefeat(enemy)
}
