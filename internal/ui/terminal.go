package ui

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/samdwyer/scoundrel/internal/game"
	"github.com/samdwyer/scoundrel/internal/gamedata"
)

// maxInput bounds the prompt buffer.
const maxInput = 32

// Terminal is the tcell implementation of game.Input, plus the main menu.
type Terminal struct {
	screen    *Screen
	renderer  *Renderer
	narration *gamedata.Narration
	logger    *zap.Logger
	last      game.Snapshot
}

// NewTerminal creates a terminal front end drawing to screen.
func NewTerminal(screen *Screen, narration *gamedata.Narration, logger *zap.Logger) *Terminal {
	return &Terminal{
		screen:    screen,
		renderer:  NewRenderer(screen, narration),
		narration: narration,
		logger:    logger,
	}
}

// Render draws the snapshot and remembers it for the next prompt.
func (t *Terminal) Render(s game.Snapshot) {
	t.last = s
	if s.Phase.IsOver() {
		t.renderer.Render(s, "", Prompt{Label: "Press any key to return to the menu"})
		t.waitKey()
		return
	}
	t.renderer.Render(s, "", Prompt{Label: "Your move: "})
}

// ChooseAction reads lines until one parses as a legal move.
func (t *Terminal) ChooseAction(ctx context.Context, opts game.Options) (game.Move, error) {
	var move game.Move
	err := t.ask(ctx, "", "Your move: ", func(text string) error {
		m, err := game.ParseMove(text, opts)
		if err != nil {
			return err
		}
		move = m
		return nil
	}, func(p Prompt) { t.renderer.Render(t.last, "", p) })
	return move, err
}

// Confirm reads lines until one is a yes or a no.
func (t *Terminal) Confirm(ctx context.Context, question string) (bool, error) {
	var answer bool
	err := t.ask(ctx, question, "[Y]es / [N]o: ", func(text string) error {
		a, err := game.ParseConfirm(text)
		if err != nil {
			return err
		}
		answer = a
		return nil
	}, func(p Prompt) { t.renderer.Render(t.last, question, p) })
	return answer, err
}

// Menu shows the title screen and returns the chosen action.
func (t *Terminal) Menu(ctx context.Context) (game.MenuAction, error) {
	lines := append([]string{}, t.narration.Intro...)
	lines = append(lines, "", "What would you like to do?")
	for _, item := range t.narration.Menu {
		lines = append(lines, " "+item)
	}

	var action game.MenuAction
	err := t.ask(ctx, "", "Your choice: ", func(text string) error {
		a, err := game.ParseMenuAction(text)
		if err != nil {
			return err
		}
		action = a
		return nil
	}, func(p Prompt) { t.renderer.RenderLines(lines, p) })
	return action, err
}

// ShowRules displays the rules until a key is pressed.
func (t *Terminal) ShowRules() {
	t.renderer.RenderLines(t.narration.Rules, Prompt{Label: "Press any key to return to the menu"})
	t.waitKey()
}

// ask re-prompts until accept returns nil. Rejected input is shown with its
// error and never reaches the caller.
func (t *Terminal) ask(ctx context.Context, question, label string, accept func(string) error, draw func(Prompt)) error {
	p := Prompt{Label: label}
	for {
		draw(p)
		text, err := t.readLine(ctx, p, draw)
		if err != nil {
			return err
		}
		if err := accept(text); err != nil {
			if !errors.Is(err, game.ErrInvalidInput) {
				return err
			}
			t.logger.Debug("rejected input", zap.String("text", text), zap.String("question", question))
			p.Error = err.Error()
			continue
		}
		return nil
	}
}

// readLine collects keystrokes until Enter. Esc and Ctrl-C abandon.
func (t *Terminal) readLine(ctx context.Context, p Prompt, draw func(Prompt)) (string, error) {
	p.Buffer = ""
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return "", game.ErrAbandoned
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", game.ErrAbandoned
			case tcell.KeyEnter:
				return p.Buffer, nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if n := len([]rune(p.Buffer)); n > 0 {
					p.Buffer = string([]rune(p.Buffer)[:n-1])
				}
			case tcell.KeyRune:
				if len(p.Buffer) < maxInput {
					p.Buffer += string(ev.Rune())
				}
			}
		}
		draw(p)
	}
}

// waitKey blocks until any key is pressed or the screen goes away.
func (t *Terminal) waitKey() {
	for {
		switch t.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

var _ game.Input = (*Terminal)(nil)
