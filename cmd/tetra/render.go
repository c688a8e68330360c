package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/tetra/tetris"
)

const (
	cellSize = 16
	// Board origin, in cells, leaving room for the hold box on the left.
	boardLeft = 6
	boardTop  = 1

	screenCols = boardLeft + tetris.Cols + 7
	screenRows = boardTop + tetris.VisibleRows + 1
)

var (
	background  = color.RGBA{18, 18, 24, 255}
	wellColor   = color.RGBA{30, 30, 40, 255}
	frameColor  = color.RGBA{120, 120, 130, 255}
	cellOutline = color.RGBA{0, 0, 0, 255}
	ghostColor  = color.RGBA{255, 255, 255, 60}
	spentColor  = color.RGBA{90, 90, 90, 255}
)

var kindColors = [...]color.RGBA{
	tetris.I: {102, 191, 255, 255},
	tetris.O: {255, 203, 0, 255},
	tetris.T: {200, 122, 255, 255},
	tetris.J: {0, 121, 241, 255},
	tetris.L: {255, 161, 0, 255},
	tetris.S: {0, 228, 48, 255},
	tetris.Z: {230, 41, 55, 255},
}

type renderer struct {
	scale float32
}

func (r renderer) cell() float32 {
	return cellSize * r.scale
}

// block draws one cell at grid coordinates, where x and y count cells from
// the top left of the screen.
func (r renderer) block(screen *ebiten.Image, x, y float32, c color.Color) {
	size := r.cell()
	vector.DrawFilledRect(screen, x*size, y*size, size, size, c, false)
	vector.StrokeRect(screen, x*size, y*size, size, size, 1, cellOutline, false)
}

func (r renderer) piece(screen *ebiten.Image, kind tetris.Kind, x, y float32, c color.Color) {
	for _, off := range tetris.Shape(kind, tetris.Up) {
		r.block(screen, x+float32(off.Col), y+float32(off.Row), c)
	}
}

func (r renderer) text(screen *ebiten.Image, s string, col, row float32) {
	size := r.cell()
	ebitenutil.DebugPrintAt(screen, s, int(col*size), int(row*size))
}

func (r renderer) Draw(screen *ebiten.Image, session *tetris.Session) {
	screen.Fill(background)
	size := r.cell()

	vector.DrawFilledRect(screen, boardLeft*size, boardTop*size, tetris.Cols*size, tetris.VisibleRows*size, wellColor, false)
	vector.StrokeRect(screen, boardLeft*size-2, boardTop*size-2, tetris.Cols*size+4, tetris.VisibleRows*size+4, 2, frameColor, false)

	board := session.Board()
	for row := tetris.VisibleTop; row < tetris.Rows; row++ {
		for col := range tetris.Cols {
			if k := board[row][col]; k != tetris.None {
				r.block(screen, float32(boardLeft+col), float32(boardTop+row-tetris.VisibleTop), kindColors[k])
			}
		}
	}

	if !session.GameOver() {
		for _, sq := range session.GhostSquares() {
			if sq.Row >= tetris.VisibleTop {
				vector.DrawFilledRect(screen, float32(boardLeft+sq.Col)*size, float32(boardTop+sq.Row-tetris.VisibleTop)*size, size, size, ghostColor, false)
			}
		}
		active := session.Active()
		for _, sq := range session.ActiveSquares() {
			if sq.Row >= tetris.VisibleTop {
				r.block(screen, float32(boardLeft+sq.Col), float32(boardTop+sq.Row-tetris.VisibleTop), kindColors[active.Kind])
			}
		}
	}

	r.text(screen, "HOLD", 1, boardTop)
	if held := session.Held(); held.Valid() {
		c := color.Color(kindColors[held])
		if !session.CanHold() {
			c = spentColor
		}
		r.piece(screen, held, 2, boardTop+3, c)
	}

	queueCol := float32(boardLeft + tetris.Cols + 2)
	r.text(screen, "NEXT", queueCol, boardTop)
	for i, k := range session.Queue() {
		r.piece(screen, k, queueCol+1, float32(boardTop+3+3*i), kindColors[k])
	}

	r.text(screen, fmt.Sprintf("SCORE\n%d", session.Score()), 1, boardTop+8)
	r.text(screen, fmt.Sprintf("LEVEL\n%d", session.Level()), 1, boardTop+11)
	r.text(screen, fmt.Sprintf("LINES\n%d", session.Lines()), 1, boardTop+14)

	if session.GameOver() {
		r.text(screen, "GAME OVER", boardLeft+2, boardTop+9)
		r.text(screen, "Press R to restart", boardLeft+1, boardTop+10)
	}
}
