package bot

import (
	"github.com/mcoot/tictactoe-go/internal/dependencies/random"
	"github.com/mcoot/tictactoe-go/internal/model"
)

// RandomStrategy picks a random empty position
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// Play marks a random empty cell
func (s *RandomStrategy) Play(board *model.Board) (model.Position, error) {
	var empty []model.Position
	for row := range model.BoardSize {
		for col := range model.BoardSize {
			pos := model.Position{Row: row, Col: col}
			if board.IsEmpty(pos) {
				empty = append(empty, pos)
			}
		}
	}
	if len(empty) == 0 {
		return model.Position{}, model.ErrBoardFull
	}

	pos := empty[s.random.Intn(len(empty))]
	board.Set(pos, model.Bot)
	return pos, nil
}
