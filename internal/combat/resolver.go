// Package combat resolves a single room card against the player.
package combat

import (
	"github.com/samdwyer/scoundrel/internal/card"
	"github.com/samdwyer/scoundrel/internal/entity"
)

// Event identifies what happened when a card was resolved. The game uses it
// to pick a line of narration.
type Event string

const (
	// EventCleanKill - weapon killed the enemy without taking damage
	EventCleanKill Event = "clean_kill"
	// EventWeaponKill - weapon killed the enemy but some damage leaked through
	EventWeaponKill Event = "weapon_kill"
	// EventFistsByChoice - player had a usable weapon but fought bare-handed
	EventFistsByChoice Event = "fists_by_choice"
	// EventFists - no usable weapon, full damage
	EventFists Event = "fists"
	// EventPotion - potion drunk, health below max afterwards
	EventPotion Event = "potion"
	// EventPotionFull - potion drunk, health now exactly max
	EventPotionFull Event = "potion_full"
	// EventPotionWasted - second potion in a turn, no effect
	EventPotionWasted Event = "potion_wasted"
	// EventWeaponEquip - weapon picked up
	EventWeaponEquip Event = "weapon_equip"
)

// Result contains the outcome of resolving one card.
type Result struct {
	Card      card.Card
	Event     Event
	Damage    int        // Health actually lost
	Healing   int        // Health actually restored
	Drank     bool       // True if this card used up the turn's potion
	Discarded *card.Card // Weapon thrown away to equip this card
}

// Resolve applies a card to the player. useWeapon is only honoured for enemies
// the equipped weapon can defeat; otherwise the fight is bare-handed.
// potionUsed reports whether a potion was already drunk this turn.
func Resolve(p *entity.Player, c card.Card, useWeapon, potionUsed bool) Result {
	switch c.Kind() {
	case card.KindEnemy:
		return Fight(p, c, useWeapon)
	case card.KindHealth:
		return Drink(p, c, potionUsed)
	default:
		return Equip(p, c)
	}
}

// Fight resolves an enemy card.
func Fight(p *entity.Player, enemy card.Card, useWeapon bool) Result {
	result := Result{Card: enemy}
	armed := p.CanUseWeaponOn(enemy)

	switch {
	case armed && useWeapon:
		w := p.Weapon()
		damage := w.DamageAgainst(enemy)
		w.RecordKill(enemy)
		result.Damage = p.ApplyDamage(damage)
		if damage == 0 {
			result.Event = EventCleanKill
		} else {
			result.Event = EventWeaponKill
		}
	case armed:
		result.Damage = p.ApplyDamage(enemy.Rank())
		result.Event = EventFistsByChoice
	default:
		result.Damage = p.ApplyDamage(enemy.Rank())
		result.Event = EventFists
	}

	return result
}

// Drink resolves a health potion. Only the first potion of a turn heals.
func Drink(p *entity.Player, potion card.Card, potionUsed bool) Result {
	result := Result{Card: potion}
	if potionUsed {
		result.Event = EventPotionWasted
		return result
	}

	result.Healing = p.Heal(potion.Rank())
	result.Drank = true
	if p.Health == entity.MaxHealth {
		result.Event = EventPotionFull
	} else {
		result.Event = EventPotion
	}
	return result
}

// Equip resolves a weapon card, discarding whatever was held before.
func Equip(p *entity.Player, weapon card.Card) Result {
	result := Result{Card: weapon, Event: EventWeaponEquip}
	if old := p.EquipWeapon(weapon); old != nil {
		discarded := old.Card()
		result.Discarded = &discarded
	}
	return result
}

// CalculateDamage returns the damage a fight would deal without applying it.
// The weapon prompt quotes it.
func CalculateDamage(p *entity.Player, enemy card.Card, useWeapon bool) int {
	if useWeapon && p.CanUseWeaponOn(enemy) {
		return p.Weapon().DamageAgainst(enemy)
	}
	return enemy.Rank()
}
