package tui

import "github.com/gdamore/tcell/v2"

// ActionKind is what a key press asks the game to do
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionPlace
	ActionRestart
	ActionQuit
)

// Action is a decoded key press. DRow and DCol are set for ActionMove.
type Action struct {
	Kind       ActionKind
	DRow, DCol int
}

func move(dRow, dCol int) Action {
	return Action{Kind: ActionMove, DRow: dRow, DCol: dCol}
}

// ActionForKey maps a key event to a game action
func ActionForKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return move(-1, 0)
	case tcell.KeyDown:
		return move(1, 0)
	case tcell.KeyLeft:
		return move(0, -1)
	case tcell.KeyRight:
		return move(0, 1)
	case tcell.KeyEnter:
		return Action{Kind: ActionPlace}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: ActionQuit}
	case tcell.KeyRune:
		return actionForRune(ev.Rune())
	}
	return Action{}
}

func actionForRune(r rune) Action {
	switch r {
	case 'k', 'w':
		return move(-1, 0)
	case 'j', 's':
		return move(1, 0)
	case 'h', 'a':
		return move(0, -1)
	case 'l', 'd':
		return move(0, 1)
	case ' ':
		return Action{Kind: ActionPlace}
	case 'r':
		return Action{Kind: ActionRestart}
	case 'q':
		return Action{Kind: ActionQuit}
	}
	return Action{}
}
