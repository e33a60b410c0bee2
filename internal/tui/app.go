package tui

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mcoot/tictactoe-go/internal/dependencies/clock"
	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/bot"
	"github.com/mcoot/tictactoe-go/internal/services/game"
)

// DefaultAnimDelay is the pause between strokes of the win line
const DefaultAnimDelay = 60 * time.Millisecond

// Config holds the interactive session settings
type Config struct {
	BotStrategy string
	AnimDelay   time.Duration
	Color       bool
}

// animation is a win line being drawn stroke by stroke
type animation struct {
	line  model.Line
	next  func() (Stroke, bool)
	stop  func()
	drawn []Stroke
	// tick is the pending wait for the next stroke, nil until armed
	tick <-chan time.Time
}

// App runs one interactive game session on a terminal screen. All game
// state is touched from the goroutine that calls Run.
type App struct {
	screen         tcell.Screen
	renderer       *Renderer
	gameController *game.Controller
	botService     *bot.Service
	clock          clock.Clock
	cfg            Config
	logger         *slog.Logger

	gameID model.GameID
	anim   *animation
}

// New creates an App. The screen must already be initialised.
func New(
	screen tcell.Screen,
	gameController *game.Controller,
	botService *bot.Service,
	clk clock.Clock,
	cfg Config,
	logger *slog.Logger,
) *App {
	if cfg.AnimDelay <= 0 {
		cfg.AnimDelay = DefaultAnimDelay
	}
	return &App{
		screen:         screen,
		renderer:       NewRenderer(screen, cfg.Color),
		gameController: gameController,
		botService:     botService,
		clock:          clk,
		cfg:            cfg,
		logger:         logger.With(slog.String("component", "tui")),
	}
}

// Start creates the session's game and draws the first frame
func (a *App) Start(ctx context.Context) error {
	g, err := a.botService.StartGame(ctx, a.cfg.BotStrategy)
	if err != nil {
		return err
	}
	a.gameID = g.ID
	a.logger.Info("session started", slog.String("game_id", string(g.ID)))
	return a.redraw(ctx)
}

// GameID returns the ID of the game being played
func (a *App) GameID() model.GameID {
	return a.gameID
}

// Animating reports whether a win line is still being drawn
func (a *App) Animating() bool {
	return a.anim != nil
}

// Run plays until the user quits or ctx is cancelled. A panic restores the
// terminal before it propagates.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := recover(); err != nil {
			a.logger.Error("panic recovered",
				slog.Any("error", err),
				slog.String("stack", string(debug.Stack())),
				slog.String("game_id", string(a.gameID)),
			)
			a.screen.Fini()
			panic(err)
		}
	}()

	if err := a.Start(ctx); err != nil {
		return err
	}
	defer a.stopAnimation()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	for {
		var tick <-chan time.Time
		if a.anim != nil {
			if a.anim.tick == nil {
				a.anim.tick = a.clock.After(a.cfg.AnimDelay)
			}
			tick = a.anim.tick
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			done, err := a.HandleEvent(ctx, ev)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		case <-tick:
			a.anim.tick = nil
			a.Tick()
		}
	}
}

// HandleEvent applies one terminal event. It reports true when the user
// asked to quit.
func (a *App) HandleEvent(ctx context.Context, ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		return false, a.redraw(ctx)
	case *tcell.EventKey:
		// Any key ends a running animation first
		if a.anim != nil {
			a.finishAnimation()
		}
		return a.handleAction(ctx, ActionForKey(ev))
	}
	return false, nil
}

func (a *App) handleAction(ctx context.Context, action Action) (bool, error) {
	g, err := a.gameController.GetGame(ctx, a.gameID)
	if err != nil {
		return false, err
	}

	switch action.Kind {
	case ActionQuit:
		a.logger.Info("session ended", slog.String("game_id", string(a.gameID)))
		return true, nil
	case ActionRestart:
		if _, err := a.gameController.Restart(ctx, a.gameID); err != nil {
			return false, err
		}
	case ActionMove:
		if g.IsOver() {
			return false, nil
		}
		if _, err := a.gameController.MoveCursor(ctx, a.gameID, action.DRow, action.DCol); err != nil {
			return false, err
		}
	case ActionPlace:
		if g.IsOver() {
			return false, nil
		}
		if err := a.playTurn(ctx, g.Cursor); err != nil {
			return false, err
		}
	default:
		return false, nil
	}

	return false, a.redraw(ctx)
}

// playTurn places the human's mark and lets the bot answer. Rejected
// placements are ignored.
func (a *App) playTurn(ctx context.Context, pos model.Position) error {
	g, err := a.gameController.PlayHuman(ctx, a.gameID, pos)
	if isRejectedMove(err) {
		a.logger.Debug("placement ignored",
			slog.Int("row", pos.Row),
			slog.Int("col", pos.Col),
			slog.String("reason", err.Error()),
		)
		return nil
	}
	if err != nil {
		return err
	}

	if !g.IsOver() {
		if _, err := a.botService.TakeTurn(ctx, a.gameID); err != nil {
			return err
		}
		if g, err = a.gameController.GetGame(ctx, a.gameID); err != nil {
			return err
		}
	}

	if g.Winner != nil {
		a.startAnimation(g.Winner.Line)
	}
	return nil
}

func isRejectedMove(err error) bool {
	return errors.Is(err, model.ErrCellOccupied) ||
		errors.Is(err, model.ErrInvalidPosition) ||
		errors.Is(err, model.ErrGameComplete) ||
		errors.Is(err, model.ErrNotHumanTurn)
}

// redraw draws the current game. A finished game shows its full win line,
// or only the strokes drawn so far while the line is still being animated.
func (a *App) redraw(ctx context.Context) error {
	g, err := a.gameController.GetGame(ctx, a.gameID)
	if err != nil {
		return err
	}
	tally, err := a.gameController.Tally(ctx)
	if err != nil {
		return err
	}

	a.renderer.DrawGame(g, tally)
	switch {
	case a.anim != nil:
		for _, s := range a.anim.drawn {
			a.renderer.DrawStroke(s)
		}
	case g.Winner != nil:
		a.renderer.DrawWinLine(g.Winner.Line)
	}
	a.renderer.Show()
	return nil
}

func (a *App) startAnimation(line model.Line) {
	a.stopAnimation()
	next, stop := iter.Pull(WinLineTrace(line))
	a.anim = &animation{line: line, next: next, stop: stop}
}

// Tick draws the next stroke of the running animation
func (a *App) Tick() {
	if a.anim == nil {
		return
	}
	s, ok := a.anim.next()
	if !ok {
		a.stopAnimation()
		return
	}
	a.anim.drawn = append(a.anim.drawn, s)
	a.renderer.DrawStroke(s)
	a.renderer.Show()
}

// finishAnimation skips to the end of the running animation
func (a *App) finishAnimation() {
	line := a.anim.line
	a.stopAnimation()
	a.renderer.DrawWinLine(line)
	a.renderer.Show()
}

func (a *App) stopAnimation() {
	if a.anim == nil {
		return
	}
	a.anim.stop()
	a.anim = nil
}
