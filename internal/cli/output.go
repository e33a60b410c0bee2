package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/tictactoe-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case MoveResult:
		o.printMoveResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// MoveResult is the outcome of one bot turn on a board given on the command line
type MoveResult struct {
	Strategy string `json:"strategy"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Board    string `json:"board"`
	Status   string `json:"status"`
	Line     string `json:"line,omitempty"`
}

func newMoveResult(strategy string, pos model.Position, board *model.Board, status model.GameStatus, win *model.Win) MoveResult {
	result := MoveResult{
		Strategy: strategy,
		Row:      pos.Row,
		Col:      pos.Col,
		Board:    board.String(),
		Status:   string(status),
	}
	if win != nil {
		result.Line = win.Line.ID.String()
	}
	return result
}

func (o *Output) printMoveResult(m MoveResult) {
	fmt.Fprintf(o.w, "%s bot plays row %d, col %d\n", model.BotStrategyDisplayName(m.Strategy), m.Row, m.Col)
	if board, err := model.ParseBoard(m.Board); err == nil {
		o.printBoard(board)
	}
	fmt.Fprintf(o.w, "Status: %s\n", m.Status)
	if m.Line != "" {
		fmt.Fprintf(o.w, "Line: %s\n", m.Line)
	}
}

func (o *Output) printBoard(b *model.Board) {
	// Print column headers
	fmt.Fprint(o.w, "    ")
	for col := range model.BoardSize {
		fmt.Fprintf(o.w, " %d ", col)
	}
	fmt.Fprintln(o.w)

	fmt.Fprint(o.w, "   +")
	for range model.BoardSize {
		fmt.Fprint(o.w, "---")
	}
	fmt.Fprintln(o.w, "+")

	for row := range model.BoardSize {
		fmt.Fprintf(o.w, " %d |", row)
		for col := range model.BoardSize {
			cell := b.Get(model.Position{Row: row, Col: col})
			if cell == model.Empty {
				fmt.Fprint(o.w, " . ")
			} else {
				fmt.Fprintf(o.w, " %c ", cell.Symbol())
			}
		}
		fmt.Fprintln(o.w, "|")
	}

	fmt.Fprint(o.w, "   +")
	for range model.BoardSize {
		fmt.Fprint(o.w, "---")
	}
	fmt.Fprintln(o.w, "+")
}
