package tetris

// Wall kick tables, as (row, col) offsets from the basic rotation origin.
// Rows grow downward.
var (
	kicksI1    = [4]Offset{{0, -2}, {0, 1}, {-1, -2}, {-2, 1}}
	kicksI2    = [4]Offset{{0, -1}, {0, 2}, {-2, -1}, {1, 2}}
	kicksJLSTZ = [4]Offset{{0, -1}, {-1, -1}, {2, 0}, {2, -1}}
)

func mirror(kicks [4]Offset, rowSign, colSign int) [4]Offset {
	var out [4]Offset
	for i, k := range kicks {
		out[i] = Offset{Row: k.Row * rowSign, Col: k.Col * colSign}
	}
	return out
}

type transition struct {
	from, to Rotation
}

// kickTable returns the four kick offsets for rotating kind from one state
// to another. O never reaches here.
func kickTable(kind Kind, from, to Rotation) [4]Offset {
	t := transition{from, to}
	if kind == I {
		switch t {
		case transition{Up, Right}, transition{Left, Down}:
			return kicksI1
		case transition{Right, Up}, transition{Down, Left}:
			return mirror(kicksI1, -1, -1)
		case transition{Right, Down}, transition{Up, Left}:
			return kicksI2
		case transition{Down, Right}, transition{Left, Up}:
			return mirror(kicksI2, -1, -1)
		}
		panic("tetris: unreachable I rotation " + from.String() + "->" + to.String())
	}
	switch t {
	case transition{Up, Right}, transition{Down, Right}:
		return kicksJLSTZ
	case transition{Right, Up}, transition{Right, Down}:
		return mirror(kicksJLSTZ, -1, -1)
	case transition{Down, Left}, transition{Left, Up}:
		return mirror(kicksJLSTZ, 1, -1)
	case transition{Left, Down}, transition{Up, Left}:
		return mirror(kicksJLSTZ, -1, 1)
	}
	panic("tetris: unreachable rotation " + from.String() + "->" + to.String())
}

// basicOffset is the pre-shift applied to the I piece's origin before the
// first rotation test, compensating for its off-centre bounding box.
func basicOffset(kind Kind, clockwise bool, to Rotation) Offset {
	if kind != I {
		return Offset{}
	}
	if !clockwise {
		// a counter-clockwise turn into s shifts like a clockwise turn
		// into the state preceding s
		to = to.Rotate(false)
	}
	switch to {
	case Up:
		return Offset{Row: -1}
	case Right:
		return Offset{Col: 1}
	case Down:
		return Offset{Row: 1}
	default:
		return Offset{Col: -1}
	}
}

// Rotate turns the piece one step, trying the basic placement and then the
// four kick placements in order. The first candidate whose cells are all
// free is committed. O pieces never rotate.
func (p *Piece) Rotate(clockwise bool, board *Board) bool {
	if p.Kind == O {
		return false
	}
	to := p.Rotation.Rotate(clockwise)
	basic := basicOffset(p.Kind, clockwise, to)
	baseRow, baseCol := p.Origin.Row+basic.Row, p.Origin.Col+basic.Col

	candidates := make([]Offset, 0, 5)
	candidates = append(candidates, Offset{})
	kicks := kickTable(p.Kind, p.Rotation, to)
	candidates = append(candidates, kicks[:]...)

	for _, k := range candidates {
		row, col := baseRow+k.Row, baseCol+k.Col
		if !InBounds(row, col) {
			continue
		}
		candidate := Piece{Kind: p.Kind, Origin: Position{Row: row, Col: col}, Rotation: to}
		if p.validate(candidate, board) {
			return true
		}
	}
	return false
}
