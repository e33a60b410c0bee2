package model

import "strings"

// BoardSize is the dimension of the square grid
const BoardSize = 3

// Cell is the content of a single board square
type Cell uint8

const (
	Empty Cell = iota
	Human
	Bot
)

// Symbol returns the character drawn for the cell
func (c Cell) Symbol() rune {
	switch c {
	case Human:
		return 'X'
	case Bot:
		return 'O'
	default:
		return ' '
	}
}

// Valid reports whether c is one of the enumerated cell values
func (c Cell) Valid() bool {
	return c <= Bot
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Human:
		return "human"
	case Bot:
		return "bot"
	default:
		return "invalid"
	}
}

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Valid returns true if the position is within the grid
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Center is the middle cell of the grid
var Center = Position{Row: BoardSize / 2, Col: BoardSize / 2}

// Board is the fixed 3x3 grid, row-major: Cells[row][col]
type Board struct {
	Cells [BoardSize][BoardSize]Cell
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// Get returns the cell at the given position, or Empty if out of bounds
func (b *Board) Get(pos Position) Cell {
	if !pos.Valid() {
		return Empty
	}
	return b.Cells[pos.Row][pos.Col]
}

// Set writes a cell without any occupancy check
func (b *Board) Set(pos Position, cell Cell) {
	if pos.Valid() && cell.Valid() {
		b.Cells[pos.Row][pos.Col] = cell
	}
}

// IsEmpty returns true if the cell at the given position is empty
func (b *Board) IsEmpty(pos Position) bool {
	return pos.Valid() && b.Cells[pos.Row][pos.Col] == Empty
}

// Place puts a mark on an empty cell. The board is left unchanged on error.
func (b *Board) Place(pos Position, cell Cell) error {
	if !pos.Valid() {
		return ErrInvalidPosition
	}
	if cell == Empty || !cell.Valid() {
		return ErrInvalidCell
	}
	if b.Cells[pos.Row][pos.Col] != Empty {
		return ErrCellOccupied
	}
	b.Cells[pos.Row][pos.Col] = cell
	return nil
}

// IsFull returns true if all cells are filled
func (b *Board) IsFull() bool {
	return b.Count(Empty) == 0
}

// Count returns how many cells hold the given value
func (b *Board) Count(cell Cell) int {
	count := 0
	for row := range BoardSize {
		for col := range BoardSize {
			if b.Cells[row][col] == cell {
				count++
			}
		}
	}
	return count
}

// Reset clears every cell
func (b *Board) Reset() {
	b.Cells = [BoardSize][BoardSize]Cell{}
}

// String renders the board as rows of X, O and '.' separated by '/'
func (b *Board) String() string {
	var sb strings.Builder
	for row := range BoardSize {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := range BoardSize {
			if b.Cells[row][col] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(b.Cells[row][col].Symbol())
			}
		}
	}
	return sb.String()
}

// ParseBoard reads the format produced by String. '_' and ' ' are accepted
// as empty cells, and marks are case-insensitive.
func ParseBoard(s string) (*Board, error) {
	rows := strings.Split(s, "/")
	if len(rows) != BoardSize {
		return nil, ErrInvalidBoard
	}

	board := NewBoard()
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != BoardSize {
			return nil, ErrInvalidBoard
		}
		for col, r := range runes {
			switch r {
			case 'X', 'x':
				board.Cells[row][col] = Human
			case 'O', 'o':
				board.Cells[row][col] = Bot
			case '.', '_', ' ':
				board.Cells[row][col] = Empty
			default:
				return nil, ErrInvalidBoard
			}
		}
	}
	return board, nil
}
