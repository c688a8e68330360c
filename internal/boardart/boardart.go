// Package boardart converts between text-art board literals and
// tetris.Board values, and renders a session as the text panel used by the
// terminal debug mode.
//
// A board literal has one line per row, ten cells per line. '.' is an empty
// cell, a kind letter (IOTJLSZ) is a block of that kind and '#' is a block
// of the Garbage kind. Literals shorter than the board are aligned to the
// bottom row, so fixtures only need to spell out the stack.
//
// A board does not remember which cells came from '#', so Format writes
// them back as the Garbage letter 'Z'. Parse then Format is exact only for
// literals without '#'.
package boardart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plus3/tetra/tetris"
)

// Garbage is the kind written for '#' cells. Format renders it as 'Z'.
const Garbage = tetris.Z

var ErrTooManyRows = errors.New("boardart: more rows than the board holds")

// Parse reads a board literal. Blank lines before and after the literal
// are ignored.
func Parse(text string) (tetris.Board, error) {
	var board tetris.Board

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > tetris.Rows {
		return board, fmt.Errorf("%w: %d > %d", ErrTooManyRows, len(lines), tetris.Rows)
	}

	top := tetris.Rows - len(lines)
	for i, line := range lines {
		cells := []rune(strings.TrimSpace(line))
		if len(cells) != tetris.Cols {
			return board, fmt.Errorf("boardart: line %d: want %d cells, got %d", i+1, tetris.Cols, len(cells))
		}
		for col, r := range cells {
			kind, err := parseCell(r)
			if err != nil {
				return board, fmt.Errorf("boardart: line %d col %d: %w", i+1, col, err)
			}
			board[top+i][col] = kind
		}
	}
	return board, nil
}

func parseCell(r rune) (tetris.Kind, error) {
	switch r {
	case '.':
		return tetris.None, nil
	case '#':
		return Garbage, nil
	}
	if kind, ok := tetris.KindFromGlyph(r); ok {
		return kind, nil
	}
	return tetris.None, fmt.Errorf("unknown cell %q", r)
}

// MustParse is Parse for fixtures known to be valid. It panics on error.
func MustParse(text string) tetris.Board {
	board, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return board
}

// FormatRow returns one row of board as ten glyphs.
func FormatRow(board tetris.Board, row int) string {
	var sb strings.Builder
	for col := range tetris.Cols {
		sb.WriteRune(board[row][col].Glyph())
	}
	return sb.String()
}

// Format returns board as a literal Parse accepts. With visibleOnly set the
// buffer rows are left out.
func Format(board tetris.Board, visibleOnly bool) string {
	first := 0
	if visibleOnly {
		first = tetris.VisibleTop
	}
	var sb strings.Builder
	for row := first; row < tetris.Rows; row++ {
		sb.WriteString(FormatRow(board, row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
