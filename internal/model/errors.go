package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrInvalidPosition = errors.New("invalid board position")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidCell     = errors.New("invalid cell value")
	ErrBoardFull       = errors.New("board is full")
	ErrInvalidBoard    = errors.New("invalid board layout")

	// Game errors
	ErrGameNotFound = errors.New("game not found")
	ErrGameComplete = errors.New("game is already complete")
	ErrNotBotTurn   = errors.New("not the bot's turn")
	ErrNotHumanTurn = errors.New("not the human's turn")

	// Bot errors
	ErrUnknownStrategy = errors.New("unknown bot strategy")
)
