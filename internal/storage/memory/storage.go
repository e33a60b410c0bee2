package memory

import (
	"context"
	"sync"

	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games     map[model.GameID]*model.Game
	summaries []model.GameSummary
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameID]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

// SaveGame stores a copy so later mutations by the caller need another save
func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *game
	if game.Winner != nil {
		win := *game.Winner
		stored.Winner = &win
	}
	s.games[game.ID] = &stored
	return nil
}

// GetGame returns a copy of the stored game
func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	result := *game
	if game.Winner != nil {
		win := *game.Winner
		result.Winner = &win
	}
	return &result, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// Summary operations

func (s *Storage) SaveSummary(ctx context.Context, summary *model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries = append(s.summaries, *summary)
	return nil
}

// ListSummaries returns finished games oldest first
func (s *Storage) ListSummaries(ctx context.Context) ([]model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.GameSummary, len(s.summaries))
	copy(result, s.summaries)
	return result, nil
}
