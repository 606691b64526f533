package gamedata

import (
	"errors"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/scoundrel/internal/card"
)

// Narration keys that are not combat events.
const (
	KeyWeaponDiscard = "weapon_discard"
	KeyWeaponPrompt  = "weapon_prompt"
	KeyRoom          = "room"
	KeyFlee          = "flee"
	KeyMoveOn        = "move_on"
	KeyDeath         = "death"
	KeyVictory       = "victory"
)

// Narration is the text of the game: title screen, menu, rules and the line
// printed after each thing that happens. Lines may contain {placeholders}.
type Narration struct {
	Title      string            `json:"title"`
	Intro      []string          `json:"intro"`
	Menu       []string          `json:"menu"`
	Rules      []string          `json:"rules"`
	Events     map[string]string `json:"events"`
	SuitColors map[string]string `json:"suitColors"`
}

// LoadNarration loads the narration from the embedded scoundrel.json.
func LoadNarration() (*Narration, error) {
	n, err := Load[Narration]("scoundrel.json")
	if err != nil {
		return nil, err
	}
	if len(n.Events) == 0 {
		return nil, errors.New("no events loaded from scoundrel.json")
	}
	return &n, nil
}

// MustLoadNarration loads the narration, panicking on error.
func MustLoadNarration() *Narration {
	n, err := LoadNarration()
	if err != nil {
		panic(err)
	}
	return n
}

// Line returns the narration for key with placeholders substituted. vars are
// name/value pairs, e.g. Line("weapon_equip", "card", "7♦").
// Unknown keys return the key itself.
func (n *Narration) Line(key string, vars ...string) string {
	text, ok := n.Events[key]
	if !ok {
		return key
	}
	if len(vars) < 2 {
		return text
	}

	pairs := make([]string, 0, len(vars))
	for i := 0; i+1 < len(vars); i += 2 {
		pairs = append(pairs, "{"+vars[i]+"}", vars[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// SuitColor returns the display colour for a suit, white if none is defined.
func (n *Narration) SuitColor(s card.Suit) tcell.Color {
	hex, ok := n.SuitColors[s.String()]
	if !ok {
		return tcell.ColorWhite
	}
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}
