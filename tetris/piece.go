package tetris

// SpawnRow and SpawnCol locate the origin of every newly active piece.
const (
	SpawnRow = 20
	SpawnCol = 4
)

// Piece is the falling piece: a kind placed at an origin in a rotation
// state. A Piece is a plain value; copies are independent.
type Piece struct {
	Kind     Kind
	Origin   Position
	Rotation Rotation
}

// NewPiece places kind at the spawn origin in the Up state.
func NewPiece(kind Kind) Piece {
	return Piece{
		Kind:     kind,
		Origin:   NewPosition(SpawnRow, SpawnCol),
		Rotation: Up,
	}
}

// Squares projects the shape onto the origin. Cells are not bounds
// checked; a committed piece always lies on the board.
func (p Piece) Squares() [4]Position {
	var out [4]Position
	for i, off := range Shape(p.Kind, p.Rotation) {
		out[i] = Position{Row: p.Origin.Row + off.Row, Col: p.Origin.Col + off.Col}
	}
	return out
}

// fits reports whether every cell of p is in bounds and empty.
func (p Piece) fits(board *Board) bool {
	for _, sq := range p.Squares() {
		if board.Occupied(sq.Row, sq.Col) {
			return false
		}
	}
	return true
}

// validate commits the origin and rotation of candidate into p when all
// four of its cells are free. Nothing changes otherwise.
func (p *Piece) validate(candidate Piece, board *Board) bool {
	if !candidate.fits(board) {
		return false
	}
	p.Origin = candidate.Origin
	p.Rotation = candidate.Rotation
	return true
}

func (p *Piece) move(dRow, dCol int, board *Board) bool {
	origin, ok := p.Origin.Translate(dRow, dCol)
	if !ok {
		return false
	}
	return p.validate(Piece{Kind: p.Kind, Origin: origin, Rotation: p.Rotation}, board)
}

// Shift moves the piece one column in dir.
func (p *Piece) Shift(dir Direction, board *Board) bool {
	return p.move(0, int(dir), board)
}

// SoftDrop moves the piece one row down.
func (p *Piece) SoftDrop(board *Board) bool {
	return p.move(1, 0, board)
}

// Grounded reports whether the piece cannot move down.
func (p Piece) Grounded(board *Board) bool {
	return !p.SoftDrop(board)
}
