package tui

import (
	"iter"

	"github.com/mcoot/tictactoe-go/internal/model"
)

// Stroke is one character of the animated win line
type Stroke struct {
	X, Y int
	Ch   rune
}

// WinLineTrace yields the strokes that cross out a winning line, in drawing
// order. The sequence only depends on the line, so replaying it always ends
// in the same picture.
func WinLineTrace(line model.Line) iter.Seq[Stroke] {
	x, y := gridX, gridY+1
	dx, dy := line.DCol, line.DRow
	var ch rune
	var steps int

	switch {
	case line.IsColumn():
		ch = '|'
		x += line.Origin.Col*(CellWidth+1) + CellWidth/2
		steps = model.BoardSize*(CellHeight+1) - 1
	case line.IsRow():
		ch = '-'
		y += line.Origin.Row*(CellHeight+1) + CellHeight/2
		steps = model.BoardSize*(CellWidth+1) - 1
	default:
		side := min(CellWidth, CellHeight)
		steps = model.BoardSize*(side+1) - 1
		mid := (CellWidth+1)*(model.BoardSize/2) + CellWidth/2
		if dx < 0 {
			ch = '/'
			x += mid + steps/2
		} else {
			ch = '\\'
			x += mid - steps/2
		}
	}

	return func(yield func(Stroke) bool) {
		sx, sy := x, y
		for range steps {
			if !yield(Stroke{X: sx, Y: sy, Ch: ch}) {
				return
			}
			sx += dx
			sy += dy
		}
	}
}
