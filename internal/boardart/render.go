package boardart

import (
	"fmt"
	"strings"

	"github.com/plus3/tetra/tetris"
)

const panelWidth = 8

type panel [tetris.VisibleRows][]rune

func newPanel(width int) *panel {
	var p panel
	for i := range p {
		p[i] = []rune(strings.Repeat(" ", width))
	}
	return &p
}

// stamp draws kind's Up shape as "[]" pairs with its origin at (row, col),
// where col counts two-character cells.
func (p *panel) stamp(kind tetris.Kind, row, col int) {
	for _, off := range tetris.Shape(kind, tetris.Up) {
		r, c := row+off.Row, 2*(col+off.Col)
		if r < 0 || r >= len(p) || c < 0 || c+1 >= len(p[r]) {
			continue
		}
		p[r][c] = '['
		p[r][c+1] = ']'
	}
}

// Render draws the held piece, the visible board with the active piece and
// the queue side by side. The footer marks the columns the active piece
// spans, and the last line carries the score.
func Render(s *tetris.Session) string {
	held := newPanel(panelWidth)
	if k := s.Held(); k.Valid() {
		held.stamp(k, 2, 1)
	}

	board := s.Board()
	field := newPanel(2 * tetris.Cols)
	for row := range tetris.VisibleRows {
		for col := range tetris.Cols {
			if board[tetris.VisibleTop+row][col] == tetris.None {
				field[row][2*col] = ' '
				field[row][2*col+1] = '.'
			} else {
				field[row][2*col] = '['
				field[row][2*col+1] = ']'
			}
		}
	}

	minCol, maxCol := tetris.Cols, -1
	for _, sq := range s.ActiveSquares() {
		minCol = min(minCol, sq.Col)
		maxCol = max(maxCol, sq.Col)
		if sq.Row >= tetris.VisibleTop {
			field[sq.Row-tetris.VisibleTop][2*sq.Col] = '['
			field[sq.Row-tetris.VisibleTop][2*sq.Col+1] = ']'
		}
	}

	queue := newPanel(panelWidth)
	row := -1
	for _, k := range s.Queue() {
		if k == tetris.I {
			row += 2
		} else {
			row += 3
		}
		queue.stamp(k, row, 1)
	}

	var sb strings.Builder
	sb.WriteString("   HELD                              NEXT   \n")
	for r := range tetris.VisibleRows {
		fmt.Fprintf(&sb, " %s <!%s!> %s \n", string(held[r]), string(field[r]), string(queue[r]))
	}
	sb.WriteString("          <!")
	for col := range tetris.Cols {
		if col >= minCol && col <= maxCol {
			sb.WriteString("##")
		} else {
			sb.WriteString("==")
		}
	}
	sb.WriteString("!>          \n")
	sb.WriteString("            " + strings.Repeat(`\/`, tetris.Cols) + "            \n")
	fmt.Fprintf(&sb, "   SCORE %d  LEVEL %d  LINES %d", s.Score(), s.Level(), s.Lines())
	if s.GameOver() {
		sb.WriteString("  GAME OVER")
	}
	sb.WriteByte('\n')
	return sb.String()
}
