package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/scoundrel/internal/card"
	"github.com/samdwyer/scoundrel/internal/combat"
)

func TestLoadNarration(t *testing.T) {
	n, err := LoadNarration()
	if err != nil {
		t.Fatalf("Failed to load narration: %v", err)
	}

	if n.Title == "" {
		t.Error("Expected a title")
	}
	if len(n.Menu) != 3 {
		t.Errorf("Expected 3 menu lines, got %d", len(n.Menu))
	}
	if len(n.Rules) == 0 {
		t.Error("Expected rules text")
	}
}

func TestNarrationCoversEveryEvent(t *testing.T) {
	n := MustLoadNarration()

	keys := []string{
		string(combat.EventCleanKill),
		string(combat.EventWeaponKill),
		string(combat.EventFistsByChoice),
		string(combat.EventFists),
		string(combat.EventPotion),
		string(combat.EventPotionFull),
		string(combat.EventPotionWasted),
		string(combat.EventWeaponEquip),
		KeyWeaponDiscard,
		KeyWeaponPrompt,
		KeyRoom,
		KeyFlee,
		KeyMoveOn,
		KeyDeath,
		KeyVictory,
	}

	for _, key := range keys {
		if _, ok := n.Events[key]; !ok {
			t.Errorf("Expected narration for %q", key)
		}
	}
}

func TestNarrationLine(t *testing.T) {
	n := &Narration{Events: map[string]string{
		"swap":  "You drop the {old} for the {card}.",
		"plain": "Nothing to see.",
	}}

	tests := []struct {
		key      string
		vars     []string
		expected string
	}{
		{"swap", []string{"old", "3♦", "card", "9♦"}, "You drop the 3♦ for the 9♦."},
		{"plain", nil, "Nothing to see."},
		{"plain", []string{"card", "ignored"}, "Nothing to see."},
		{"missing", nil, "missing"},
	}

	for _, tt := range tests {
		if got := n.Line(tt.key, tt.vars...); got != tt.expected {
			t.Errorf("Line(%q, %v) = %q, want %q", tt.key, tt.vars, got, tt.expected)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#000000", true},
		{"invalid", false},
		{"#GGGGGG", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestSuitColor(t *testing.T) {
	n := MustLoadNarration()

	for _, s := range []card.Suit{card.Hearts, card.Diamonds, card.Spades, card.Clubs} {
		if got := n.SuitColor(s); got == tcell.ColorWhite || got == tcell.ColorDefault {
			t.Errorf("SuitColor(%s) = %v, want a configured colour", s, got)
		}
	}

	if got := n.SuitColor(card.Suit(42)); got != tcell.ColorWhite {
		t.Errorf("SuitColor(unknown) = %v, want white fallback", got)
	}
}
