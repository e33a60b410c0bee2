package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameStatus represents the current phase of a game
type GameStatus string

const (
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusHumanWon   GameStatus = "human_won"
	GameStatusBotWon     GameStatus = "bot_won"
	GameStatusDraw       GameStatus = "draw"
)

// Game is the state of one human-vs-bot match
type Game struct {
	ID          GameID
	Board       Board
	Cursor      Position // UI only, never read by the rules
	Status      GameStatus
	Winner      *Win // nil unless a line was completed
	Moves       int
	BotStrategy string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGame creates an empty game with the cursor on the center cell
func NewGame(id GameID, strategy string, now time.Time) *Game {
	return &Game{
		ID:          id,
		Cursor:      Center,
		Status:      GameStatusInProgress,
		BotStrategy: strategy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsOver returns true once the game has a winner or ended in a draw
func (g *Game) IsOver() bool {
	return g.Status != GameStatusInProgress
}

// IsBotTurn returns true when the human has made one more move than the bot
func (g *Game) IsBotTurn() bool {
	return g.Board.Count(Human) > g.Board.Count(Bot)
}

// MoveCursor shifts the cursor, wrapping around the edges
func (g *Game) MoveCursor(dRow, dCol int) {
	g.Cursor.Row = wrap(g.Cursor.Row + dRow)
	g.Cursor.Col = wrap(g.Cursor.Col + dCol)
}

// ResetOutcome clears the status and winner and re-centers the cursor. The
// board itself is cleared by the board service.
func (g *Game) ResetOutcome(now time.Time) {
	g.Cursor = Center
	g.Status = GameStatusInProgress
	g.Winner = nil
	g.Moves = 0
	g.UpdatedAt = now
}

func wrap(v int) int {
	return ((v % BoardSize) + BoardSize) % BoardSize
}

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	ID          GameID
	Status      GameStatus
	Moves       int
	CompletedAt time.Time
}

// Tally counts finished games in the current session
type Tally struct {
	HumanWins int
	BotWins   int
	Draws     int
}

// Add counts one finished game
func (t *Tally) Add(status GameStatus) {
	switch status {
	case GameStatusHumanWon:
		t.HumanWins++
	case GameStatusBotWon:
		t.BotWins++
	case GameStatusDraw:
		t.Draws++
	}
}

// Total returns the number of finished games
func (t Tally) Total() int {
	return t.HumanWins + t.BotWins + t.Draws
}
