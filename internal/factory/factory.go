package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/tictactoe-go/internal/dependencies/clock"
	"github.com/mcoot/tictactoe-go/internal/dependencies/random"
	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/board"
	"github.com/mcoot/tictactoe-go/internal/services/bot"
	"github.com/mcoot/tictactoe-go/internal/services/game"
	"github.com/mcoot/tictactoe-go/internal/services/rules"
	"github.com/mcoot/tictactoe-go/internal/storage"
	"github.com/mcoot/tictactoe-go/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BoardService   *board.Service
	RulesService   *rules.Service
	GameController *game.Controller
	BotService     *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Seed makes the random bot reproducible when non-nil
	Seed *uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	return newWithDependencies(memory.New(), clock.New(), rnd, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	boardService := board.New(logger)
	rulesService := rules.New()
	gameController := game.NewController(store, boardService, rulesService, clk, rnd, logger)

	strategies := map[string]bot.Strategy{
		model.BotStrategyHeuristic: bot.NewHeuristicStrategy(rulesService),
		model.BotStrategyRandom:    bot.NewRandomStrategy(rnd),
	}
	botService := bot.NewService(gameController, strategies, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		BoardService:   boardService,
		RulesService:   rulesService,
		GameController: gameController,
		BotService:     botService,
	}
}
