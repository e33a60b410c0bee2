package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/tictactoe-go/internal/dependencies/clock"
	"github.com/mcoot/tictactoe-go/internal/dependencies/random"
	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/board"
	"github.com/mcoot/tictactoe-go/internal/services/rules"
	"github.com/mcoot/tictactoe-go/internal/storage"
)

// GameIDAlphabet is the character set for generated game IDs
const GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// MoveFunc places one mark on the board and reports where
type MoveFunc func(board *model.Board) (model.Position, error)

// Controller manages the turn flow of a human-vs-bot game
type Controller struct {
	storage      storage.Storage
	boardService *board.Service
	rulesService *rules.Service
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	rulesService *rules.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		boardService: boardService,
		rulesService: rulesService,
		clock:        clock,
		random:       random,
		logger:       logger.With(slog.String("component", "game-controller")),
	}
}

// CreateGame starts a new game with an empty board
func (c *Controller) CreateGame(ctx context.Context, strategy string) (*model.Game, error) {
	gameID := model.GameID(c.random.String(12, GameIDAlphabet))
	game := model.NewGame(gameID, strategy, c.clock.Now())

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.String("bot_strategy", strategy),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// MoveCursor shifts the cursor, wrapping at the edges. Allowed at any time.
func (c *Controller) MoveCursor(ctx context.Context, gameID model.GameID, dRow, dCol int) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	game.MoveCursor(dRow, dCol)
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// PlayHuman places the human's mark. Moves on a finished game or an occupied
// cell are rejected and leave the game untouched.
func (c *Controller) PlayHuman(ctx context.Context, gameID model.GameID, pos model.Position) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.IsOver() {
		return game, model.ErrGameComplete
	}
	if game.IsBotTurn() {
		return game, model.ErrNotHumanTurn
	}

	if err := c.boardService.Place(&game.Board, pos, model.Human); err != nil {
		return game, err
	}

	c.logger.Debug("human placed",
		slog.String("game_id", string(game.ID)),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
	)

	if err := c.completeMove(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// ApplyBotMove lets move place the bot's mark and then evaluates the board.
// The bot only moves in an unfinished game after the human has moved.
func (c *Controller) ApplyBotMove(ctx context.Context, gameID model.GameID, move MoveFunc) (*model.Game, model.Position, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, model.Position{}, err
	}

	if game.IsOver() {
		return game, model.Position{}, model.ErrGameComplete
	}
	if !game.IsBotTurn() {
		return game, model.Position{}, model.ErrNotBotTurn
	}
	if c.boardService.IsFull(&game.Board) {
		return game, model.Position{}, model.ErrBoardFull
	}

	// Strategies mutate the board directly, so work on a copy until they succeed
	working := game.Board
	pos, err := move(&working)
	if err != nil {
		return game, model.Position{}, err
	}
	game.Board = working

	c.logger.Debug("bot placed",
		slog.String("game_id", string(game.ID)),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
	)

	if err := c.completeMove(ctx, game); err != nil {
		return nil, model.Position{}, err
	}
	return game, pos, nil
}

// completeMove evaluates the board after a placement and saves the game
func (c *Controller) completeMove(ctx context.Context, game *model.Game) error {
	game.Moves++
	game.UpdatedAt = c.clock.Now()
	game.Status, game.Winner = c.rulesService.Outcome(&game.Board)

	if game.IsOver() {
		attrs := []any{
			slog.String("game_id", string(game.ID)),
			slog.String("status", string(game.Status)),
			slog.Int("moves", game.Moves),
		}
		if game.Winner != nil {
			attrs = append(attrs, slog.String("line", game.Winner.Line.ID.String()))
		}
		c.logger.Info("game completed", attrs...)

		summary := &model.GameSummary{
			ID:          game.ID,
			Status:      game.Status,
			Moves:       game.Moves,
			CompletedAt: game.UpdatedAt,
		}
		if err := c.storage.SaveSummary(ctx, summary); err != nil {
			return err
		}
	}

	return c.storage.SaveGame(ctx, game)
}

// Restart clears the board so the same game can be played again
func (c *Controller) Restart(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	c.boardService.Reset(&game.Board)
	game.ResetOutcome(c.clock.Now())
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game restarted", slog.String("game_id", string(game.ID)))
	return game, nil
}

// Tally counts the outcomes of every game finished in this process
func (c *Controller) Tally(ctx context.Context) (model.Tally, error) {
	summaries, err := c.storage.ListSummaries(ctx)
	if err != nil {
		return model.Tally{}, err
	}

	var tally model.Tally
	for _, s := range summaries {
		tally.Add(s.Status)
	}
	return tally, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, strategy string) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	MoveCursor(ctx context.Context, gameID model.GameID, dRow, dCol int) (*model.Game, error)
	PlayHuman(ctx context.Context, gameID model.GameID, pos model.Position) (*model.Game, error)
	ApplyBotMove(ctx context.Context, gameID model.GameID, move MoveFunc) (*model.Game, model.Position, error)
	Restart(ctx context.Context, gameID model.GameID) (*model.Game, error)
	Tally(ctx context.Context) (model.Tally, error)
}

var _ ControllerInterface = (*Controller)(nil)
