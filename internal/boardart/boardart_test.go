package boardart_test

import (
	"strings"
	"testing"

	"github.com/plus3/tetra/internal/boardart"
	"github.com/plus3/tetra/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBottomAligns(t *testing.T) {
	b, err := boardart.Parse(`
T.........
##IIII##..
`)
	require.NoError(t, err)

	assert.Equal(t, tetris.T, b.Cell(38, 0))
	assert.Equal(t, boardart.Garbage, b.Cell(39, 0))
	assert.Equal(t, tetris.I, b.Cell(39, 2))
	assert.Equal(t, tetris.None, b.Cell(39, 9))
	assert.Equal(t, tetris.None, b.Cell(37, 0))
}

func TestParseErrors(t *testing.T) {
	_, err := boardart.Parse("..........\n.........")
	assert.ErrorContains(t, err, "line 2")

	_, err = boardart.Parse("....x.....")
	assert.ErrorContains(t, err, `unknown cell 'x'`)

	_, err = boardart.Parse(strings.Repeat("..........\n", tetris.Rows+1))
	assert.ErrorIs(t, err, boardart.ErrTooManyRows)

	assert.Panics(t, func() { boardart.MustParse("..") })
}

func TestFormatRoundTrip(t *testing.T) {
	var b tetris.Board
	b[0][0] = tetris.S
	b[25][4] = tetris.O
	b[39][9] = tetris.L

	text := boardart.Format(b, false)
	assert.Len(t, strings.Split(strings.TrimSpace(text), "\n"), tetris.Rows)

	back, err := boardart.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, b, back)

	visible := boardart.Format(b, true)
	assert.Len(t, strings.Split(strings.TrimSpace(visible), "\n"), tetris.VisibleRows)
	assert.NotContains(t, visible, "S")
}

func TestFormatWritesGarbageAsZ(t *testing.T) {
	b := boardart.MustParse("#.Z......#")
	row := boardart.FormatRow(b, tetris.Rows-1)
	assert.Equal(t, "Z.Z......Z", row)

	// The garbage marker is gone, but the cells survive a second pass.
	back := boardart.MustParse(row)
	assert.Equal(t, b, back)
}

func TestRenderShowsPanels(t *testing.T) {
	s := tetris.NewSession(tetris.WithFirstPiece(tetris.I), tetris.WithSeed(1))
	s.Hold()

	out := boardart.Render(s)
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), tetris.VisibleRows+4)

	assert.Contains(t, lines[0], "HELD")
	assert.Contains(t, lines[0], "NEXT")
	// Held I drawn on panel row 2.
	assert.Contains(t, lines[3], "[][][][]")
	assert.Contains(t, out, "SCORE 0  LEVEL 1  LINES 0")
	assert.Contains(t, lines[tetris.VisibleRows+1], "##")
	assert.Contains(t, lines[tetris.VisibleRows+1], "==")
	assert.NotContains(t, out, "GAME OVER")
}

func TestRenderEmptyBoard(t *testing.T) {
	s := tetris.NewSession(tetris.WithFirstPiece(tetris.O), tetris.WithSeed(1))
	out := boardart.Render(s)
	lines := strings.Split(out, "\n")
	// The O spawns with its lower half on the first visible row.
	assert.Contains(t, lines[1], "<! . . . .[][] . . . .!>")
	assert.Contains(t, lines[2], "<! . . . . . . . . . .!>")
	assert.Contains(t, lines[tetris.VisibleRows+1], "<!========####========!>")
}
