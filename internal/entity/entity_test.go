package entity

import (
	"errors"
	"testing"

	"github.com/samdwyer/scoundrel/internal/card"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer()

	if p.Health != MaxHealth {
		t.Errorf("NewPlayer().Health = %d, want %d", p.Health, MaxHealth)
	}
	if p.Weapon() != nil {
		t.Error("NewPlayer() should start unarmed")
	}
	if !p.IsAlive() {
		t.Error("NewPlayer() should be alive")
	}
}

func TestPlayerApplyDamage(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		damage     int
		wantHealth int
		wantActual int
	}{
		{"unarmed eight", 20, 8, 12, 8},
		{"overkill clamps at zero", 5, 14, 0, 5},
		{"zero damage", 10, 0, 10, 0},
		{"negative damage ignored", 10, -3, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Player{Health: tt.health}
			got := p.ApplyDamage(tt.damage)
			if got != tt.wantActual {
				t.Errorf("ApplyDamage(%d) = %d, want %d", tt.damage, got, tt.wantActual)
			}
			if p.Health != tt.wantHealth {
				t.Errorf("Health = %d, want %d", p.Health, tt.wantHealth)
			}
		})
	}
}

func TestPlayerIsAlive(t *testing.T) {
	p := &Player{Health: 1}
	if !p.IsAlive() {
		t.Error("player with 1 health should be alive")
	}
	p.ApplyDamage(1)
	if p.IsAlive() {
		t.Error("player with 0 health should be dead")
	}
}

func TestPlayerHeal(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		amount     int
		wantHealth int
		wantActual int
	}{
		{"partial", 10, 5, 15, 5},
		{"clamped at max", 15, 10, MaxHealth, 5},
		{"already full", MaxHealth, 3, MaxHealth, 0},
		{"negative ignored", 10, -2, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Player{Health: tt.health}
			got := p.Heal(tt.amount)
			if got != tt.wantActual {
				t.Errorf("Heal(%d) = %d, want %d", tt.amount, got, tt.wantActual)
			}
			if p.Health != tt.wantHealth {
				t.Errorf("Health = %d, want %d", p.Health, tt.wantHealth)
			}
		})
	}
}

func TestNewWeaponRejectsNonWeapons(t *testing.T) {
	for _, c := range []card.Card{card.MustNew(card.Spades, 5), card.MustNew(card.Hearts, 5)} {
		if _, err := NewWeapon(c); !errors.Is(err, ErrInvalidCardKind) {
			t.Errorf("NewWeapon(%s) error = %v, want ErrInvalidCardKind", c, err)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("MustNewWeapon with an enemy card should panic")
		}
	}()
	MustNewWeapon(card.MustNew(card.Clubs, 3))
}

func TestWeaponStacking(t *testing.T) {
	w := MustNewWeapon(card.MustNew(card.Diamonds, 5))

	if _, ok := w.LastEnemy(); ok {
		t.Fatal("new weapon should have no last enemy")
	}
	// A fresh weapon can face anything.
	if !w.CanDefeat(card.MustNew(card.Spades, 14)) {
		t.Error("fresh weapon should defeat an ace")
	}

	eight := card.MustNew(card.Clubs, 8)
	w.RecordKill(eight)

	if last, ok := w.LastEnemy(); !ok || last != eight {
		t.Fatalf("LastEnemy() = %v, %v; want %s", last, ok, eight)
	}

	for rank := card.MinRank; rank <= card.MaxRank; rank++ {
		enemy := card.MustNew(card.Spades, rank)
		want := rank < 8
		if got := w.CanDefeat(enemy); got != want {
			t.Errorf("CanDefeat(%s) after killing 8 = %v, want %v", enemy, got, want)
		}
	}
}

func TestWeaponDamageAgainst(t *testing.T) {
	w := MustNewWeapon(card.MustNew(card.Diamonds, 5))

	tests := []struct {
		enemy    card.Card
		expected int
	}{
		{card.MustNew(card.Spades, 8), 3},
		{card.MustNew(card.Clubs, 5), 0},
		{card.MustNew(card.Clubs, 2), 0},
		{card.MustNew(card.Spades, 14), 9},
	}

	for _, tt := range tests {
		if got := w.DamageAgainst(tt.enemy); got != tt.expected {
			t.Errorf("DamageAgainst(%s) = %d, want %d", tt.enemy, got, tt.expected)
		}
	}
}

func TestEquipWeaponReplacesAndResets(t *testing.T) {
	p := NewPlayer()

	if old := p.EquipWeapon(card.MustNew(card.Diamonds, 4)); old != nil {
		t.Errorf("first EquipWeapon returned %v, want nil", old)
	}
	p.Weapon().RecordKill(card.MustNew(card.Spades, 6))

	old := p.EquipWeapon(card.MustNew(card.Diamonds, 9))
	if old == nil || old.Rank() != 4 {
		t.Fatalf("EquipWeapon returned %v, want the 4♦", old)
	}
	if p.Weapon().Rank() != 9 {
		t.Errorf("Weapon().Rank() = %d, want 9", p.Weapon().Rank())
	}
	if _, ok := p.Weapon().LastEnemy(); ok {
		t.Error("re-equipped weapon should not carry a last enemy")
	}
	if !p.CanUseWeaponOn(card.MustNew(card.Clubs, 13)) {
		t.Error("fresh weapon should be usable against any enemy")
	}
}

func TestCanUseWeaponOnUnarmed(t *testing.T) {
	p := NewPlayer()
	if p.CanUseWeaponOn(card.MustNew(card.Spades, 2)) {
		t.Error("unarmed player cannot use a weapon")
	}
}
