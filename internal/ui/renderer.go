package ui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/scoundrel/internal/card"
	"github.com/samdwyer/scoundrel/internal/game"
	"github.com/samdwyer/scoundrel/internal/gamedata"
)

var (
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHealth  = tcell.StyleDefault.Background(tcell.ColorDarkRed).Foreground(tcell.ColorWhite).Bold(true)
	styleWeapon  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite).Bold(true)
	styleCommand = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

// Prompt is the input line drawn under the game.
type Prompt struct {
	Label  string // e.g. "Your move: "
	Buffer string // what the player has typed so far
	Error  string // last rejected input, if any
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen    *Screen
	narration *gamedata.Narration
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, narration *gamedata.Narration) *Renderer {
	return &Renderer{screen: screen, narration: narration}
}

// Render draws the room, the legal commands, recent narration, the prompt
// and the status bar.
func (r *Renderer) Render(s game.Snapshot, question string, p Prompt) {
	r.screen.Clear()
	_, height := r.screen.Size()

	y := 0
	x := r.screen.DrawText(0, y, r.narration.Title, styleTitle)
	r.screen.DrawText(x+2, y, fmt.Sprintf("Turn %d  Dungeon: %d cards", s.Turn, s.DeckSize), styleDim)
	y += 2

	if !s.Phase.IsOver() {
		r.screen.DrawText(0, y, "What would you like to do?", styleText)
		y++
		for i, c := range s.Room {
			x := r.screen.DrawText(0, y, strconv.Itoa(i+1)+") Take the ", styleText)
			r.screen.DrawText(x, y, c.String(), r.cardStyle(c))
			y++
		}
		if s.Options.CanMoveOn {
			r.screen.DrawText(0, y, "[G]o to the next room", styleCommand)
			y++
		}
		if s.Options.CanFlee {
			r.screen.DrawText(0, y, "[F]lee the room", styleCommand)
			y++
		}
		y++
	}

	for _, line := range s.Log {
		r.screen.DrawText(0, y, line, styleDim)
		y++
	}

	r.drawPrompt(height-1, question, p)
	r.drawStatus(height-1, s)
	r.screen.Show()
}

// RenderLines draws a plain text page, e.g. the menu or the rules, with a
// prompt at the bottom.
func (r *Renderer) RenderLines(lines []string, p Prompt) {
	r.screen.Clear()
	_, height := r.screen.Size()

	r.screen.DrawText(0, 0, r.narration.Title, styleTitle)
	for i, line := range lines {
		r.screen.DrawText(0, i+2, line, styleText)
	}

	r.drawPrompt(height, "", p)
	r.screen.Show()
}

// drawPrompt draws the question, the input line and the error line on the
// three rows above bottom.
func (r *Renderer) drawPrompt(bottom int, question string, p Prompt) {
	if question != "" {
		r.screen.DrawText(0, bottom-3, question, styleText)
	}
	x := r.screen.DrawText(0, bottom-2, p.Label, styleText)
	x = r.screen.DrawText(x, bottom-2, p.Buffer, styleTitle)
	r.screen.ShowCursor(x, bottom-2)
	if p.Error != "" {
		r.screen.DrawText(0, bottom-1, p.Error, styleError)
	}
}

// drawStatus draws the health/weapon bar on row y, with the short session id
// at the right edge.
func (r *Renderer) drawStatus(y int, s game.Snapshot) {
	if id := shortID(s.SessionID); id != "" {
		width, _ := r.screen.Size()
		r.screen.DrawText(width-len("Session: ")-len(id), y, "Session: "+id, styleDim)
	}

	x := r.screen.DrawText(0, y, "Health: ", styleHealth)
	x = r.screen.DrawText(x, y, fmt.Sprintf("%02d", s.Health), styleText)
	if s.Weapon == nil {
		return
	}
	x = r.screen.DrawText(x+1, y, "Weapon: ", styleWeapon)
	x = r.screen.DrawText(x, y, s.Weapon.String(), r.cardStyle(*s.Weapon))
	if s.LastEnemy != nil {
		x = r.screen.DrawText(x+1, y, "(Last Enemy: ", styleText)
		x = r.screen.DrawText(x, y, s.LastEnemy.String(), r.cardStyle(*s.LastEnemy))
		r.screen.DrawText(x, y, ")", styleText)
	}
}

// shortID keeps the first block of a UUID, enough to match log lines.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (r *Renderer) cardStyle(c card.Card) tcell.Style {
	return tcell.StyleDefault.Foreground(r.narration.SuitColor(c.Suit())).Bold(true)
}
