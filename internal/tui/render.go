package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mcoot/tictactoe-go/internal/model"
)

// Renderer draws game state onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	base   tcell.Style
	win    tcell.Style
}

// NewRenderer creates a Renderer. With color off everything uses the
// terminal's default style.
func NewRenderer(screen tcell.Screen, color bool) *Renderer {
	r := &Renderer{
		screen: screen,
		base:   tcell.StyleDefault,
		win:    tcell.StyleDefault.Bold(true),
	}
	if color {
		r.base = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
		r.win = r.base.Foreground(tcell.ColorGreen)
	}
	screen.SetStyle(r.base)
	return r
}

// DrawGame clears the screen and draws the grid, marks, cursor and text lines.
// It does not draw the win line and does not call Show.
func (r *Renderer) DrawGame(g *model.Game, tally model.Tally) {
	r.screen.Clear()
	r.drawGrid()

	for row := range model.BoardSize {
		for col := range model.BoardSize {
			pos := model.Position{Row: row, Col: col}
			r.drawCell(pos, g.Board.Get(pos), pos == g.Cursor)
		}
	}

	r.drawText(0, HelpRow, HelpText, r.base)
	if status := StatusText(g); status != "" {
		r.drawText(0, StatusRow, status, r.base)
	}
	if tally.Total() > 0 {
		r.drawText(0, TallyRow, TallyText(tally), r.base)
	}
}

// DrawStroke draws one character of the win line
func (r *Renderer) DrawStroke(s Stroke) {
	r.screen.SetContent(s.X, s.Y, s.Ch, nil, r.win)
}

// DrawWinLine draws the whole win line at once
func (r *Renderer) DrawWinLine(line model.Line) {
	for s := range WinLineTrace(line) {
		r.DrawStroke(s)
	}
}

// Show flushes pending changes to the terminal
func (r *Renderer) Show() {
	r.screen.Show()
}

// drawGrid draws the separators between cells
func (r *Renderer) drawGrid() {
	for row := range model.BoardSize {
		for col := range model.BoardSize {
			x := gridX + col*(CellWidth+1)
			y := gridY + row*(CellHeight+1)

			if row > 0 {
				for i := range CellWidth {
					r.screen.SetContent(x+i, y, '-', nil, r.base)
				}
				if col != model.BoardSize-1 {
					r.screen.SetContent(x+CellWidth, y, '+', nil, r.base)
				}
			}
			if col > 0 {
				for i := range CellHeight {
					r.screen.SetContent(x-1, y+i+1, '|', nil, r.base)
				}
			}
		}
	}
}

// drawCell fills a cell's interior and puts its symbol in the middle
func (r *Renderer) drawCell(pos model.Position, cell model.Cell, highlight bool) {
	style := r.base
	if highlight {
		style = style.Reverse(true)
	}

	x0, y0 := cellOrigin(pos)
	cx, cy := cellCenter(pos)
	for y := y0; y < y0+CellHeight; y++ {
		for x := x0; x < x0+CellWidth; x++ {
			ch := ' '
			if x == cx && y == cy {
				ch = cell.Symbol()
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
