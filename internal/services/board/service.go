package board

import (
	"log/slog"

	"github.com/mcoot/tictactoe-go/internal/model"
)

// Service provides board operations
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "board-service")),
	}
}

// Place puts a mark at the specified position. Occupied or out-of-range
// cells are rejected and the board is left as it was.
func (s *Service) Place(board *model.Board, pos model.Position, symbol model.Cell) error {
	if err := s.ValidatePlacement(board, pos); err != nil {
		s.logger.Debug("placement rejected",
			slog.Int("row", pos.Row),
			slog.Int("col", pos.Col),
			slog.String("error", err.Error()),
		)
		return err
	}
	return board.Place(pos, symbol)
}

// ValidatePlacement checks if a position is valid and empty
func (s *Service) ValidatePlacement(board *model.Board, pos model.Position) error {
	if !pos.Valid() {
		return model.ErrInvalidPosition
	}
	if !board.IsEmpty(pos) {
		return model.ErrCellOccupied
	}
	return nil
}

// Reset clears the board
func (s *Service) Reset(board *model.Board) {
	board.Reset()
	s.logger.Debug("board reset")
}

// IsFull checks if all cells are filled
func (s *Service) IsFull(board *model.Board) bool {
	return board.IsFull()
}

// Interface for dependency injection
type ServiceInterface interface {
	Place(board *model.Board, pos model.Position, symbol model.Cell) error
	ValidatePlacement(board *model.Board, pos model.Position) error
	Reset(board *model.Board)
	IsFull(board *model.Board) bool
}

var _ ServiceInterface = (*Service)(nil)
