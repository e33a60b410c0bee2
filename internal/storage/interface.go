package storage

import (
	"context"

	"github.com/mcoot/tictactoe-go/internal/model"
)

// Storage holds games for the lifetime of the process
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Finished game history
	SaveSummary(ctx context.Context, summary *model.GameSummary) error
	ListSummaries(ctx context.Context) ([]model.GameSummary, error)
}
