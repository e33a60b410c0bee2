package model

// LineID names one of the eight winning lines
type LineID int

const (
	Row0 LineID = iota
	Row1
	Row2
	Col0
	Col1
	Col2
	MainDiagonal // (0,0) to (2,2)
	AntiDiagonal // (0,2) to (2,0)
)

func (id LineID) String() string {
	switch id {
	case Row0:
		return "row-0"
	case Row1:
		return "row-1"
	case Row2:
		return "row-2"
	case Col0:
		return "col-0"
	case Col1:
		return "col-1"
	case Col2:
		return "col-2"
	case MainDiagonal:
		return "main-diagonal"
	case AntiDiagonal:
		return "anti-diagonal"
	default:
		return "unknown"
	}
}

// Line is a run of BoardSize cells starting at Origin and stepping by (DRow, DCol)
type Line struct {
	ID     LineID
	Origin Position
	DRow   int
	DCol   int
}

// Lines holds every line in scan order: rows, columns, main diagonal, anti-diagonal.
// Both winner detection and threat scanning walk this table.
var Lines = [...]Line{
	{ID: Row0, Origin: Position{Row: 0, Col: 0}, DRow: 0, DCol: 1},
	{ID: Row1, Origin: Position{Row: 1, Col: 0}, DRow: 0, DCol: 1},
	{ID: Row2, Origin: Position{Row: 2, Col: 0}, DRow: 0, DCol: 1},
	{ID: Col0, Origin: Position{Row: 0, Col: 0}, DRow: 1, DCol: 0},
	{ID: Col1, Origin: Position{Row: 0, Col: 1}, DRow: 1, DCol: 0},
	{ID: Col2, Origin: Position{Row: 0, Col: 2}, DRow: 1, DCol: 0},
	{ID: MainDiagonal, Origin: Position{Row: 0, Col: 0}, DRow: 1, DCol: 1},
	{ID: AntiDiagonal, Origin: Position{Row: 0, Col: BoardSize - 1}, DRow: 1, DCol: -1},
}

// LineByID returns the table entry for id
func LineByID(id LineID) (Line, bool) {
	if id < 0 || int(id) >= len(Lines) {
		return Line{}, false
	}
	return Lines[id], true
}

// Cells returns the positions covered by the line, origin first
func (l Line) Cells() [BoardSize]Position {
	var cells [BoardSize]Position
	for i := range BoardSize {
		cells[i] = Position{Row: l.Origin.Row + i*l.DRow, Col: l.Origin.Col + i*l.DCol}
	}
	return cells
}

// IsRow reports whether the line runs horizontally
func (l Line) IsRow() bool {
	return l.DRow == 0
}

// IsColumn reports whether the line runs vertically
func (l Line) IsColumn() bool {
	return l.DCol == 0
}

// Win is the result of a completed line
type Win struct {
	Symbol Cell
	Line   Line
}
