package tui_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tictactoe-go/internal/factory"
	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/testutil"
	"github.com/mcoot/tictactoe-go/internal/tui"
)

type AppSuite struct {
	suite.Suite
	testApp *factory.TestApp
	screen  tcell.SimulationScreen
	app     *tui.App
	ctx     context.Context
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppSuite))
}

func (s *AppSuite) SetupTest() {
	s.ctx = context.Background()
	s.testApp = factory.NewTestApp()
	s.screen = tcell.NewSimulationScreen("UTF-8")
	s.Require().NoError(s.screen.Init())
	s.screen.SetSize(90, 24)

	s.app = s.newApp()
	s.testApp.MockRandom.QueueString("TUIGAME")
	s.Require().NoError(s.app.Start(s.ctx))
}

func (s *AppSuite) TearDownTest() {
	s.screen.Fini()
}

func (s *AppSuite) newApp() *tui.App {
	cfg := tui.Config{
		BotStrategy: model.BotStrategyHeuristic,
		AnimDelay:   time.Millisecond,
		Color:       true,
	}
	return tui.New(s.screen, s.testApp.GameController, s.testApp.BotService, s.testApp.MockClock, cfg, testutil.NopLogger())
}

func (s *AppSuite) press(keys ...rune) {
	for _, r := range keys {
		done, err := s.app.HandleEvent(s.ctx, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
		s.Require().NoError(err)
		s.Require().False(done)
	}
}

func (s *AppSuite) game() *model.Game {
	g, err := s.testApp.GameController.GetGame(s.ctx, s.app.GameID())
	s.Require().NoError(err)
	return g
}

func (s *AppSuite) at(x, y int) rune {
	r, _, _, _ := s.screen.GetContent(x, y)
	return r
}

func (s *AppSuite) line(y int) string {
	width, _ := s.screen.Size()
	var sb strings.Builder
	for x := range width {
		sb.WriteRune(s.at(x, y))
	}
	return strings.TrimRight(sb.String(), " ")
}

func (s *AppSuite) reversed(x, y int) bool {
	_, _, style, _ := s.screen.GetContent(x, y)
	_, _, attrs := style.Decompose()
	return attrs&tcell.AttrReverse != 0
}

// playBotWin plays the human side of a game the heuristic bot wins on the main diagonal
func (s *AppSuite) playBotWin() {
	s.press('k', ' ')      // (0,1), bot takes the center
	s.press('j', 'j', ' ') // (2,1), bot takes corner (0,0)
	s.press('k', 'h', ' ') // (1,0), bot completes the diagonal
	s.Require().Equal(model.GameStatusBotWon, s.game().Status)
}

func (s *AppSuite) TestInitialFrame() {
	s.Equal(tui.HelpText, s.line(tui.HelpRow))

	// Separators
	s.Equal('+', s.at(6, 5))
	s.Equal('+', s.at(12, 9))
	s.Equal('|', s.at(6, 2))
	s.Equal('|', s.at(12, 12))
	s.Equal('-', s.at(1, 5))

	// Cursor starts on the center cell
	s.True(s.reversed(9, 7))
	s.False(s.reversed(3, 3))
	s.Equal("", s.line(tui.StatusRow))
}

func (s *AppSuite) TestCursorMovesAndWraps() {
	s.press('k')
	s.Equal(model.Position{Row: 0, Col: 1}, s.game().Cursor)

	done, err := s.app.HandleEvent(s.ctx, tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	s.Require().NoError(err)
	s.False(done)
	s.Equal(model.Position{Row: 0, Col: 0}, s.game().Cursor)

	s.press('a', 'w')
	s.Equal(model.Position{Row: 2, Col: 2}, s.game().Cursor)
	s.True(s.reversed(15, 11))
	s.False(s.reversed(9, 7))
}

func (s *AppSuite) TestPlaceAndBotReply() {
	s.press(' ')

	g := s.game()
	s.Equal("O../.X./...", g.Board.String())
	s.Equal('X', s.at(9, 7))
	s.Equal('O', s.at(3, 3))
}

func (s *AppSuite) TestEnterPlaces() {
	done, err := s.app.HandleEvent(s.ctx, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	s.Require().NoError(err)
	s.False(done)
	s.Equal(model.Human, s.game().Board.Get(model.Center))
}

func (s *AppSuite) TestOccupiedCellIgnored() {
	s.press(' ')
	before := s.game().Board.String()

	s.press(' ')
	s.Equal(before, s.game().Board.String())
	s.Equal(2, s.game().Moves)
}

func (s *AppSuite) TestBotWinAnimates() {
	s.playBotWin()
	s.True(s.app.Animating())
	s.Equal("Game over. Bot (O) wins. Press 'r' to restart or 'q' to quit.", s.line(tui.StatusRow))

	// Nothing of the line is drawn before the first tick
	s.NotEqual('\\', s.at(4, 2))

	s.app.Tick()
	s.Equal('\\', s.at(4, 2))
	s.NotEqual('\\', s.at(14, 12))

	for range 10 {
		s.app.Tick()
	}
	s.Equal('\\', s.at(14, 12))

	s.app.Tick()
	s.False(s.app.Animating())
}

func (s *AppSuite) TestKeyFinishesAnimation() {
	s.playBotWin()
	s.Require().True(s.app.Animating())

	// Movement is ignored once the game is over, but still ends the animation
	s.press('l')
	s.False(s.app.Animating())
	s.Equal(model.Position{Row: 1, Col: 0}, s.game().Cursor)
	s.Equal('\\', s.at(4, 2))
	s.Equal('\\', s.at(14, 12))
}

func (s *AppSuite) TestResizeDuringAnimationKeepsLine() {
	s.playBotWin()
	s.app.Tick()
	s.app.Tick()

	done, err := s.app.HandleEvent(s.ctx, tcell.NewEventResize(90, 24))
	s.Require().NoError(err)
	s.False(done)
	s.True(s.app.Animating())
	s.Equal('\\', s.at(4, 2))
	s.Equal('\\', s.at(5, 3))
	s.NotEqual('\\', s.at(6, 4))

	for s.app.Animating() {
		s.app.Tick()
	}
	s.Equal('\\', s.at(4, 2))
	s.Equal('\\', s.at(5, 3))
	s.Equal('\\', s.at(14, 12))
}

func (s *AppSuite) TestPlaceIgnoredAfterGameOver() {
	s.playBotWin()
	s.press('j', ' ')

	g := s.game()
	s.Equal(model.Position{Row: 1, Col: 0}, g.Cursor)
	s.Equal(6, g.Moves)
}

func (s *AppSuite) TestRestartShowsTally() {
	s.playBotWin()
	s.press('r')

	g := s.game()
	s.Equal(model.GameStatusInProgress, g.Status)
	s.Equal(".../.../...", g.Board.String())
	s.Equal(model.Center, g.Cursor)
	s.Equal("", s.line(tui.StatusRow))
	s.Equal("Session: you 0, bot 1, draws 0", s.line(tui.TallyRow))
	s.Equal(' ', s.at(4, 2))
}

func (s *AppSuite) TestQuitKeys() {
	done, err := s.app.HandleEvent(s.ctx, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	s.Require().NoError(err)
	s.True(done)

	done, err = s.app.HandleEvent(s.ctx, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	s.Require().NoError(err)
	s.True(done)
}

func (s *AppSuite) TestResizeRedraws() {
	s.screen.Clear()
	done, err := s.app.HandleEvent(s.ctx, tcell.NewEventResize(90, 24))
	s.Require().NoError(err)
	s.False(done)
	s.Equal(tui.HelpText, s.line(tui.HelpRow))
}

func (s *AppSuite) TestRunProcessesQueuedKeys() {
	app := s.newApp()
	s.testApp.MockRandom.QueueString("RUNGAME")

	s.screen.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
	s.screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	s.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	s.Require().NoError(app.Run(s.ctx))
	s.Equal(model.GameID("RUNGAME"), app.GameID())

	g, err := s.testApp.GameController.GetGame(s.ctx, app.GameID())
	s.Require().NoError(err)
	s.Equal(model.Human, g.Board.Get(model.Position{Row: 0, Col: 1}))
	s.Equal(model.Bot, g.Board.Get(model.Center))
}

func (s *AppSuite) TestRunAnimatesWinLine() {
	app := s.newApp()
	s.testApp.MockRandom.QueueString("RUNWIN")

	// Bot ends up completing row 2
	for _, r := range []rune{' ', 'k', ' ', 'l', ' ', 'j', ' ', 'q'} {
		s.screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}

	s.Require().NoError(app.Run(s.ctx))

	g, err := s.testApp.GameController.GetGame(s.ctx, app.GameID())
	s.Require().NoError(err)
	s.Equal("OXX/.XX/OOO", g.Board.String())
	s.Require().NotNil(g.Winner)
	s.Equal(model.Row2, g.Winner.Line.ID)

	// Animation was paced by the clock and the full line is on screen
	s.GreaterOrEqual(s.testApp.MockClock.WaitCount(), 1)
	s.Equal(time.Millisecond, s.testApp.MockClock.Waits[0])
	s.Equal('-', s.at(1, 11))
	s.Equal('-', s.at(17, 11))
}

func (s *AppSuite) TestRunKeepsPendingTickAcrossEvents() {
	app := s.newApp()
	s.testApp.MockRandom.QueueString("RUNHOLD")
	s.testApp.MockClock.Pause()

	// Same game as above; the bot completes row 2 on the seventh key
	for _, r := range []rune{' ', 'k', ' ', 'l', ' ', 'j', ' '} {
		s.screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	s.screen.InjectMouse(3, 3, tcell.ButtonNone, tcell.ModNone)
	s.screen.InjectMouse(9, 7, tcell.ButtonNone, tcell.ModNone)
	s.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	s.Require().NoError(app.Run(s.ctx))

	g, err := s.testApp.GameController.GetGame(s.ctx, app.GameID())
	s.Require().NoError(err)
	s.Equal(model.GameStatusBotWon, g.Status)

	// Mouse events do not re-arm the wait for the first stroke
	s.Equal(1, s.testApp.MockClock.WaitCount())
	s.Equal('-', s.at(1, 11))
	s.Equal('-', s.at(17, 11))
}

func (s *AppSuite) TestRunStopsOnCancel() {
	app := s.newApp()
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.ErrorIs(app.Run(ctx), context.Canceled)
}
