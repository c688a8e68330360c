package tetris_test

import (
	"testing"

	"github.com/plus3/tetra/tetris"
	"github.com/stretchr/testify/assert"
)

var rotations = []tetris.Rotation{tetris.Up, tetris.Right, tetris.Down, tetris.Left}

func TestShapeHasFourDistinctCells(t *testing.T) {
	for _, kind := range tetris.Kinds {
		for _, rot := range rotations {
			shape := tetris.Shape(kind, rot)
			seen := make(map[tetris.Offset]bool)
			for _, off := range shape {
				seen[off] = true
			}
			assert.Len(t, seen, 4, "%v %v", kind, rot)
			assert.Equal(t, shape, tetris.Shape(kind, rot), "shape must be stable")
		}
	}
}

func TestShapeOIgnoresRotation(t *testing.T) {
	up := tetris.Shape(tetris.O, tetris.Up)
	for _, rot := range rotations {
		assert.Equal(t, up, tetris.Shape(tetris.O, rot))
	}
}

func TestShapeRotationsDiffer(t *testing.T) {
	for _, kind := range tetris.Kinds {
		if kind == tetris.O {
			continue
		}
		seen := make(map[[4]tetris.Offset]tetris.Rotation)
		for _, rot := range rotations {
			shape := tetris.Shape(kind, rot)
			prev, dup := seen[shape]
			assert.False(t, dup, "%v: %v repeats %v", kind, rot, prev)
			seen[shape] = rot
		}
	}
}

func TestShapeInvalidKindPanics(t *testing.T) {
	assert.Panics(t, func() { tetris.Shape(tetris.None, tetris.Up) })
	assert.Panics(t, func() { tetris.Shape(tetris.Kind(9), tetris.Up) })
}

func TestRotationCycle(t *testing.T) {
	r := tetris.Up
	for range 4 {
		r = r.Rotate(true)
	}
	assert.Equal(t, tetris.Up, r)

	assert.Equal(t, tetris.Right, tetris.Up.Rotate(true))
	assert.Equal(t, tetris.Left, tetris.Up.Rotate(false))
	assert.Equal(t, tetris.Down, tetris.Left.Rotate(false))
	assert.Equal(t, tetris.Up, tetris.Left.Rotate(true))
}

func TestKindGlyphs(t *testing.T) {
	for i, kind := range tetris.Kinds {
		assert.Equal(t, tetris.Kind(i+1), kind, "tags run 1..7 in order")
		back, ok := tetris.KindFromGlyph(kind.Glyph())
		assert.True(t, ok)
		assert.Equal(t, kind, back)
	}
	_, ok := tetris.KindFromGlyph('x')
	assert.False(t, ok)
	assert.False(t, tetris.None.Valid())
	assert.Equal(t, "T", tetris.T.String())
}
