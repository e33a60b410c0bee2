package bot

import "github.com/mcoot/tictactoe-go/internal/model"

// Strategy defines how a bot makes its move
type Strategy interface {
	// Play places exactly one Bot mark on the board and returns where it went.
	// It returns model.ErrBoardFull, without touching the board, when no cell is empty.
	Play(board *model.Board) (model.Position, error)
}
