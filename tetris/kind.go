package tetris

import "fmt"

// Kind identifies one of the seven tetrominoes. The value doubles as the
// tag stored in board cells, with None marking an empty cell.
type Kind uint8

const (
	None Kind = iota
	I
	O
	T
	J
	L
	S
	Z
)

// Kinds lists the seven playable kinds in tag order.
var Kinds = [7]Kind{I, O, T, J, L, S, Z}

var glyphs = [...]rune{
	None: '.',
	I:    'I',
	O:    'O',
	T:    'T',
	J:    'J',
	L:    'L',
	S:    'S',
	Z:    'Z',
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= I && k <= Z
}

// Glyph returns the display letter for the kind, '.' for None.
func (k Kind) Glyph() rune {
	if int(k) >= len(glyphs) {
		return '?'
	}
	return glyphs[k]
}

func (k Kind) String() string {
	if k == None {
		return "None"
	}
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return string(k.Glyph())
}

// KindFromGlyph maps a display letter back to its kind.
func KindFromGlyph(r rune) (Kind, bool) {
	for _, k := range Kinds {
		if glyphs[k] == r {
			return k, true
		}
	}
	return None, false
}
