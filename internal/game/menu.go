package game

// MenuAction is a main menu selection.
type MenuAction string

const (
	// MenuPlay - start a new game
	MenuPlay MenuAction = "p"
	// MenuRules - show the rules page
	MenuRules MenuAction = "s"
	// MenuQuit - leave the program
	MenuQuit MenuAction = "q"
)

// String returns the action name.
func (a MenuAction) String() string {
	switch a {
	case MenuPlay:
		return "play"
	case MenuRules:
		return "rules"
	case MenuQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseMenuAction accepts a single menu letter in any case.
func ParseMenuAction(text string) (MenuAction, error) {
	switch a := MenuAction(normalize(text)); a {
	case MenuPlay, MenuRules, MenuQuit:
		return a, nil
	default:
		return "", &InputError{Text: text}
	}
}
