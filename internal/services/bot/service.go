package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/game"
)

// BotAction records a move the bot made
type BotAction struct {
	GameID   model.GameID
	Strategy string
	Position model.Position
	// GameOver is set when this move finished the game
	GameOver bool
}

// Service plays the bot's side of a game
type Service struct {
	gameController *game.Controller
	strategies     map[string]Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	gameController *game.Controller,
	strategies map[string]Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{
		gameController: gameController,
		strategies:     strategies,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// HasStrategy reports whether a strategy is registered under name
func (s *Service) HasStrategy(name string) bool {
	_, ok := s.strategies[name]
	return ok
}

// Strategy returns the named strategy
func (s *Service) Strategy(name string) (Strategy, error) {
	st, ok := s.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
	return st, nil
}

// StartGame creates a game played by the named strategy
func (s *Service) StartGame(ctx context.Context, strategy string) (*model.Game, error) {
	if !s.HasStrategy(strategy) {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, strategy)
	}
	return s.gameController.CreateGame(ctx, strategy)
}

// TakeTurn makes the bot's move if it is due. It returns a nil action, and no
// error, when the game is finished or the human still has to move.
func (s *Service) TakeTurn(ctx context.Context, gameID model.GameID) (*BotAction, error) {
	g, err := s.gameController.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	st, err := s.Strategy(g.BotStrategy)
	if err != nil {
		return nil, err
	}

	g, pos, err := s.gameController.ApplyBotMove(ctx, gameID, st.Play)
	if errors.Is(err, model.ErrGameComplete) || errors.Is(err, model.ErrNotBotTurn) || errors.Is(err, model.ErrBoardFull) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("bot moved",
		slog.String("game_id", string(gameID)),
		slog.String("strategy", g.BotStrategy),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
	)

	return &BotAction{
		GameID:   gameID,
		Strategy: g.BotStrategy,
		Position: pos,
		GameOver: g.IsOver(),
	}, nil
}

// SuggestMove applies the named strategy to a standalone board. The board is
// modified in place; it is not tied to any stored game.
func (s *Service) SuggestMove(board *model.Board, strategy string) (model.Position, error) {
	st, err := s.Strategy(strategy)
	if err != nil {
		return model.Position{}, err
	}
	return st.Play(board)
}
