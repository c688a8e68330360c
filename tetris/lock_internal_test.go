package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// wellBoard fills rows 38-39 except a two-wide well at columns 4 and 5.
func wellBoard() Board {
	var b Board
	for _, row := range []int{38, 39} {
		for col := range Cols {
			if col != 4 && col != 5 {
				b[row][col] = Z
			}
		}
	}
	return b
}

func TestValidateIsAtomic(t *testing.T) {
	var b Board
	b[21][5] = J
	p := NewPiece(T)
	before := p

	// (20,4) is free but (21,5) is taken.
	candidate := Piece{Kind: T, Origin: NewPosition(21, 4), Rotation: Up}
	assert.False(t, p.validate(candidate, &b))
	assert.Equal(t, before, p)

	candidate.Origin = NewPosition(22, 4)
	candidate.Rotation = Right
	assert.True(t, p.validate(candidate, &b))
	assert.Equal(t, candidate, p)
}

func TestTryLockImmobileLocksOnThirtyFirstCall(t *testing.T) {
	s := NewSession(WithBoard(wellBoard()), WithFirstPiece(O), WithSeed(1))
	for s.active.SoftDrop(&s.board) {
	}
	assert.False(t, s.mobile())

	for i := 1; i <= LockDelayFrames; i++ {
		assert.False(t, s.tryLock(), "call %d", i)
		assert.Equal(t, i, s.lockFrames)
	}
	assert.Equal(t, 0, s.locked)

	assert.True(t, s.tryLock())
	assert.Equal(t, 1, s.locked)
	assert.Equal(t, 2, s.lines, "the O fills the well and completes both rows")
	assert.Equal(t, 0, s.lockFrames)
}

func TestTryLockNeverLocksWhileAMoveExists(t *testing.T) {
	s := NewSession(WithFirstPiece(T), WithSeed(1))
	for s.active.SoftDrop(&s.board) {
	}
	before := s.active

	for range 500 {
		assert.False(t, s.tryLock())
	}
	assert.Equal(t, 0, s.locked)
	assert.Equal(t, before, s.active, "scratch moves leave the piece alone")
}

func TestLockSetsGameOverAtBoundary(t *testing.T) {
	var b Board
	for row := GameOverRow + 1; row < Rows; row++ {
		for col := range Cols - 1 {
			b[row][col] = L
		}
	}
	s := NewSession(WithBoard(b), WithFirstPiece(I), WithSeed(1))
	// The I sits on row 20 directly above the stack.
	s.lock()
	assert.True(t, s.over)
}
