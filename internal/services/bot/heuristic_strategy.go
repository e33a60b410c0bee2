package bot

import (
	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/rules"
)

// Rule identifies which step of the heuristic produced a move
type Rule string

const (
	RuleWin       Rule = "win"
	RuleBlock     Rule = "block"
	RuleCenter    Rule = "center"
	RuleForkBlock Rule = "fork-block"
	RuleCorner    Rule = "corner"
	RuleFirstFree Rule = "first-free"
)

const last = model.BoardSize - 1

// corners in the order they are tried
var corners = [...]model.Position{
	{Row: 0, Col: 0},
	{Row: 0, Col: last},
	{Row: last, Col: 0},
	{Row: last, Col: last},
}

// HeuristicStrategy applies a fixed priority list of rules. It has no
// randomness: the same board always produces the same move.
type HeuristicStrategy struct {
	rules *rules.Service
}

// NewHeuristicStrategy creates a new HeuristicStrategy
func NewHeuristicStrategy(rulesService *rules.Service) *HeuristicStrategy {
	return &HeuristicStrategy{rules: rulesService}
}

// Play places one Bot mark following the rule order
func (s *HeuristicStrategy) Play(board *model.Board) (model.Position, error) {
	pos, _, err := s.Decide(board)
	return pos, err
}

// Decide is Play that also reports which rule fired
func (s *HeuristicStrategy) Decide(board *model.Board) (model.Position, Rule, error) {
	if board.IsFull() {
		return model.Position{}, "", model.ErrBoardFull
	}

	if pos, ok := s.rules.TryCompleteOrBlock(board, model.Bot); ok {
		return pos, RuleWin, nil
	}
	if pos, ok := s.rules.TryCompleteOrBlock(board, model.Human); ok {
		return pos, RuleBlock, nil
	}

	if board.IsEmpty(model.Center) {
		board.Set(model.Center, model.Bot)
		return model.Center, RuleCenter, nil
	}

	if pos, ok := blockOppositeCorners(board); ok {
		return pos, RuleForkBlock, nil
	}

	for _, pos := range corners {
		if board.IsEmpty(pos) {
			board.Set(pos, model.Bot)
			return pos, RuleCorner, nil
		}
	}

	for row := range model.BoardSize {
		for col := range model.BoardSize {
			pos := model.Position{Row: row, Col: col}
			if board.IsEmpty(pos) {
				board.Set(pos, model.Bot)
				return pos, RuleFirstFree, nil
			}
		}
	}

	return model.Position{}, "", model.ErrBoardFull
}

// blockOppositeCorners answers a human holding both corners of a diagonal by
// taking an edge cell. Candidates per corner index i: (i, mid) then (mid, i).
func blockOppositeCorners(board *model.Board) (model.Position, bool) {
	c := &board.Cells
	if !(c[0][0] == model.Human && c[0][0] == c[last][last] ||
		c[0][last] == model.Human && c[0][last] == c[last][0]) {
		return model.Position{}, false
	}

	mid := model.BoardSize / 2
	for _, i := range [...]int{0, last} {
		for _, pos := range [...]model.Position{{Row: i, Col: mid}, {Row: mid, Col: i}} {
			if board.IsEmpty(pos) {
				board.Set(pos, model.Bot)
				return pos, true
			}
		}
	}
	return model.Position{}, false
}
