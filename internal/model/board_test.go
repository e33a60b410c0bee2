package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type BoardSuite struct {
	suite.Suite
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) TestNewBoardIsEmpty() {
	board := NewBoard()
	for row := range BoardSize {
		for col := range BoardSize {
			s.True(board.IsEmpty(Position{Row: row, Col: col}))
		}
	}
	s.False(board.IsFull())
	s.Equal(".../.../...", board.String())
}

func (s *BoardSuite) TestPlace() {
	board := NewBoard()

	s.Require().NoError(board.Place(Center, Human))
	s.Equal(Human, board.Get(Center))

	s.ErrorIs(board.Place(Center, Bot), ErrCellOccupied)
	s.Equal(Human, board.Get(Center))

	s.ErrorIs(board.Place(Position{Row: -1, Col: 0}, Bot), ErrInvalidPosition)
	s.ErrorIs(board.Place(Position{Row: 0, Col: 3}, Bot), ErrInvalidPosition)
	s.ErrorIs(board.Place(Position{Row: 0, Col: 0}, Empty), ErrInvalidCell)
	s.ErrorIs(board.Place(Position{Row: 0, Col: 0}, Cell(7)), ErrInvalidCell)
}

func (s *BoardSuite) TestGetOutOfRange() {
	board := NewBoard()
	s.Equal(Empty, board.Get(Position{Row: 5, Col: 5}))
	board.Set(Position{Row: 5, Col: 5}, Human)
	s.Equal(0, board.Count(Human))
}

func (s *BoardSuite) TestCountAndFull() {
	board, err := ParseBoard("XOX/XOO/OXX")
	s.Require().NoError(err)
	s.Equal(5, board.Count(Human))
	s.Equal(4, board.Count(Bot))
	s.Equal(0, board.Count(Empty))
	s.True(board.IsFull())

	board.Reset()
	s.Equal(9, board.Count(Empty))
	s.False(board.IsFull())
}

func (s *BoardSuite) TestParseBoardRoundTrip() {
	for _, layout := range []string{".../.../...", "XX./.O./...", "XOX/XOO/OXX", "..O/.X./O.."} {
		board, err := ParseBoard(layout)
		s.Require().NoError(err, layout)
		s.Equal(layout, board.String())
	}
}

func (s *BoardSuite) TestParseBoardLenient() {
	board, err := ParseBoard("x_o/ O /...")
	s.Require().NoError(err)
	s.Equal("X.O/.O./...", board.String())
}

func (s *BoardSuite) TestParseBoardInvalid() {
	for _, layout := range []string{"", "XXX/OOO", "XXXX/.../...", "XX./.../..Z", "XX./.../.../..."} {
		_, err := ParseBoard(layout)
		s.ErrorIs(err, ErrInvalidBoard, layout)
	}
}

func (s *BoardSuite) TestCellSymbols() {
	s.Equal('X', Human.Symbol())
	s.Equal('O', Bot.Symbol())
	s.Equal(' ', Empty.Symbol())
	s.Equal("human", Human.String())
}

func (s *BoardSuite) TestLineCells() {
	line, ok := LineByID(AntiDiagonal)
	s.Require().True(ok)
	s.Equal([BoardSize]Position{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}}, line.Cells())
	s.False(line.IsRow())
	s.False(line.IsColumn())

	line, ok = LineByID(Col1)
	s.Require().True(ok)
	s.True(line.IsColumn())
	s.Equal("col-1", line.ID.String())

	_, ok = LineByID(LineID(8))
	s.False(ok)
}

type GameSuite struct {
	suite.Suite
	now time.Time
}

func TestGameSuite(t *testing.T) {
	suite.Run(t, new(GameSuite))
}

func (s *GameSuite) SetupTest() {
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *GameSuite) TestNewGame() {
	game := NewGame("G1", BotStrategyHeuristic, s.now)
	s.Equal(Center, game.Cursor)
	s.Equal(GameStatusInProgress, game.Status)
	s.False(game.IsOver())
	s.False(game.IsBotTurn())
}

func (s *GameSuite) TestMoveCursorWraps() {
	game := NewGame("G1", BotStrategyHeuristic, s.now)

	game.MoveCursor(0, 1)
	game.MoveCursor(0, 1)
	s.Equal(Position{Row: 1, Col: 0}, game.Cursor)

	game.MoveCursor(-1, -1)
	game.MoveCursor(-1, 0)
	s.Equal(Position{Row: 2, Col: 2}, game.Cursor)

	game.MoveCursor(1, 0)
	s.Equal(Position{Row: 0, Col: 2}, game.Cursor)
}

func (s *GameSuite) TestResetOutcome() {
	game := NewGame("G1", BotStrategyRandom, s.now)
	game.Board.Set(Position{Row: 0, Col: 0}, Human)
	game.Status = GameStatusHumanWon
	game.Winner = &Win{Symbol: Human, Line: Lines[Row0]}
	game.Moves = 5
	game.Cursor = Position{Row: 2, Col: 2}

	later := s.now.Add(time.Hour)
	game.ResetOutcome(later)
	s.Equal("X../.../...", game.Board.String())
	s.Equal(GameStatusInProgress, game.Status)
	s.Nil(game.Winner)
	s.Equal(0, game.Moves)
	s.Equal(Center, game.Cursor)
	s.Equal(later, game.UpdatedAt)
	s.Equal(BotStrategyRandom, game.BotStrategy)
}

func (s *GameSuite) TestTally() {
	var tally Tally
	tally.Add(GameStatusHumanWon)
	tally.Add(GameStatusBotWon)
	tally.Add(GameStatusBotWon)
	tally.Add(GameStatusDraw)
	tally.Add(GameStatusInProgress)

	s.Equal(Tally{HumanWins: 1, BotWins: 2, Draws: 1}, tally)
	s.Equal(4, tally.Total())
}
