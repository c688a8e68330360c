package tetris

import "fmt"

const (
	Rows = 40
	Cols = 10

	// VisibleTop is the first visible row; rows above it are the buffer zone.
	VisibleTop = 20
	// VisibleRows is the height of the visible play area.
	VisibleRows = Rows - VisibleTop
)

// Position is a board coordinate that is guaranteed to be in bounds.
type Position struct {
	Row, Col int
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// NewPosition constructs an in-bounds position. Out-of-bounds coordinates
// are a programming error and cause a panic.
func NewPosition(row, col int) Position {
	if !InBounds(row, col) {
		panic(fmt.Sprintf("tetris: position (%d, %d) outside %dx%d board", row, col, Rows, Cols))
	}
	return Position{Row: row, Col: col}
}

// Translate returns the position moved by (dRow, dCol), or false when the
// result would leave the board.
func (p Position) Translate(dRow, dCol int) (Position, bool) {
	row, col := p.Row+dRow, p.Col+dCol
	if !InBounds(row, col) {
		return Position{}, false
	}
	return Position{Row: row, Col: col}, true
}

// Board is the playing field. Each cell holds None or the tag of the kind
// that was locked there.
type Board [Rows][Cols]Kind

// Cell returns the tag at (row, col), None when out of bounds.
func (b *Board) Cell(row, col int) Kind {
	if !InBounds(row, col) {
		return None
	}
	return b[row][col]
}

// Occupied reports whether (row, col) is out of bounds or holds a block.
func (b *Board) Occupied(row, col int) bool {
	return !InBounds(row, col) || b[row][col] != None
}

// Set writes kind into the cell at pos.
func (b *Board) Set(pos Position, kind Kind) {
	b[pos.Row][pos.Col] = kind
}

// RowSolid reports whether every cell of row is occupied.
func (b *Board) RowSolid(row int) bool {
	for _, cell := range b[row] {
		if cell == None {
			return false
		}
	}
	return true
}

// ClearRow empties row and moves every row above it down by one. The top
// row is empty afterwards.
func (b *Board) ClearRow(row int) {
	for r := row; r > 0; r-- {
		b[r] = b[r-1]
	}
	b[0] = [Cols]Kind{}
}

// Empty reports whether no cell is occupied.
func (b *Board) Empty() bool {
	return *b == Board{}
}
