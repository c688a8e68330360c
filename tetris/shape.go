package tetris

// Offset is a (row, column) displacement relative to a piece origin.
type Offset struct {
	Row, Col int
}

var oShape = [4]Offset{{-1, 0}, {-1, 1}, {0, 0}, {0, 1}}

// shapes is indexed by kind tag, then rotation state.
var shapes = [...][4][4]Offset{
	I: {
		Up:    {{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		Right: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		Down:  {{0, -2}, {0, -1}, {0, 0}, {0, 1}},
		Left:  {{-2, 0}, {-1, 0}, {0, 0}, {1, 0}},
	},
	O: {oShape, oShape, oShape, oShape},
	T: {
		Up:    {{-1, 0}, {0, -1}, {0, 0}, {0, 1}},
		Right: {{-1, 0}, {0, 0}, {0, 1}, {1, 0}},
		Down:  {{0, -1}, {0, 0}, {0, 1}, {1, 0}},
		Left:  {{-1, 0}, {0, -1}, {0, 0}, {1, 0}},
	},
	J: {
		Up:    {{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
		Right: {{-1, 0}, {-1, 1}, {0, 0}, {1, 0}},
		Down:  {{0, -1}, {0, 0}, {0, 1}, {1, 1}},
		Left:  {{1, 0}, {0, 0}, {1, -1}, {-1, 0}},
	},
	L: {
		Up:    {{-1, 1}, {0, -1}, {0, 0}, {0, 1}},
		Right: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		Down:  {{0, -1}, {0, 0}, {0, 1}, {1, -1}},
		Left:  {{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
	},
	S: {
		Up:    {{-1, 0}, {-1, 1}, {0, -1}, {0, 0}},
		Right: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		Down:  {{0, 0}, {0, 1}, {1, -1}, {1, 0}},
		Left:  {{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
	},
	Z: {
		Up:    {{-1, -1}, {-1, 0}, {0, 0}, {0, 1}},
		Right: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
		Down:  {{0, -1}, {0, 0}, {1, 0}, {1, 1}},
		Left:  {{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
	},
}

// Shape returns the four cell offsets of kind in the given rotation state.
// O ignores the rotation. Shape panics for None or an unknown kind.
func Shape(kind Kind, rotation Rotation) [4]Offset {
	if !kind.Valid() {
		panic("tetris: shape of invalid kind " + kind.String())
	}
	return shapes[kind][rotation%4]
}
