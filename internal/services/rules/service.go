package rules

import (
	"github.com/mcoot/tictactoe-go/internal/model"
)

// Service evaluates boards against the line table
type Service struct{}

// New creates a new rules Service
func New() *Service {
	return &Service{}
}

// DetectWinner returns the first completed line in scan order (rows, columns,
// main diagonal, anti-diagonal). It never modifies the board.
func (s *Service) DetectWinner(board *model.Board) (model.Win, bool) {
	for _, line := range model.Lines {
		cells := line.Cells()
		first := board.Get(cells[0])
		if first == model.Empty {
			continue
		}

		complete := true
		for _, pos := range cells[1:] {
			if board.Get(pos) != first {
				complete = false
				break
			}
		}
		if complete {
			return model.Win{Symbol: first, Line: line}, true
		}
	}
	return model.Win{}, false
}

// FindTwoInLine returns the first line, in scan order, holding exactly
// BoardSize-1 cells of symbol and at least one empty cell
func (s *Service) FindTwoInLine(board *model.Board, symbol model.Cell) (model.Line, bool) {
	for _, line := range model.Lines {
		owned, empty := 0, 0
		for _, pos := range line.Cells() {
			switch board.Get(pos) {
			case symbol:
				owned++
			case model.Empty:
				empty++
			}
		}
		if owned == model.BoardSize-1 && empty > 0 {
			return line, true
		}
	}
	return model.Line{}, false
}

// TryCompleteOrBlock fills the gap of the first threat found for symbol with a
// Bot mark. Scanning and placing happen together so a threat can never be
// acted on twice. Returns the filled position and whether anything was placed.
func (s *Service) TryCompleteOrBlock(board *model.Board, symbol model.Cell) (model.Position, bool) {
	line, ok := s.FindTwoInLine(board, symbol)
	if !ok {
		return model.Position{}, false
	}

	var placed model.Position
	for _, pos := range line.Cells() {
		if board.IsEmpty(pos) {
			board.Set(pos, model.Bot)
			placed = pos
		}
	}
	return placed, true
}

// Outcome maps a board to the game status it implies
func (s *Service) Outcome(board *model.Board) (model.GameStatus, *model.Win) {
	if win, ok := s.DetectWinner(board); ok {
		if win.Symbol == model.Human {
			return model.GameStatusHumanWon, &win
		}
		return model.GameStatusBotWon, &win
	}
	if board.IsFull() {
		return model.GameStatusDraw, nil
	}
	return model.GameStatusInProgress, nil
}
