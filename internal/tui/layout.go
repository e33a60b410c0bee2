package tui

import (
	"fmt"

	"github.com/mcoot/tictactoe-go/internal/model"
)

// Screen geometry, in terminal cells
const (
	CellWidth  = 5
	CellHeight = 3

	// top-left corner of the grid drawing
	gridX = 1
	gridY = 1

	HelpRow   = 0
	StatusRow = model.BoardSize*(CellHeight+1) + 3
	TallyRow  = StatusRow + 1
)

// HelpText is shown above the board
const HelpText = "Use arrow keys or h/j/k/l or WASD. Space/Enter to place. 'r' restart, 'q' quit."

// cellOrigin returns the top-left screen coordinate of a cell's interior
func cellOrigin(pos model.Position) (x, y int) {
	return gridX + pos.Col*(CellWidth+1), gridY + 1 + pos.Row*(CellHeight+1)
}

// cellCenter returns where a cell's symbol is drawn
func cellCenter(pos model.Position) (x, y int) {
	x, y = cellOrigin(pos)
	return x + CellWidth/2, y + CellHeight/2
}

// StatusText is the game-over line for a finished game, or "" while it is running
func StatusText(g *model.Game) string {
	switch g.Status {
	case model.GameStatusHumanWon:
		return "Game over. You (X) win! Press 'r' to restart or 'q' to quit."
	case model.GameStatusBotWon:
		return "Game over. Bot (O) wins. Press 'r' to restart or 'q' to quit."
	case model.GameStatusDraw:
		return "Game over. Draw. Press 'r' to restart or 'q' to quit."
	default:
		return ""
	}
}

// TallyText summarises the games finished this session
func TallyText(t model.Tally) string {
	return fmt.Sprintf("Session: you %d, bot %d, draws %d", t.HumanWins, t.BotWins, t.Draws)
}
