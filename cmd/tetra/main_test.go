package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/plus3/tetra/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeater(t *testing.T) {
	r := repeater{delay: 3, interval: 2}

	var fired []int
	for frame := range 10 {
		if r.step(true, frame == 0) {
			fired = append(fired, frame)
		}
	}
	// Press fires at once, then after three held polls, then every two.
	assert.Equal(t, []int{0, 3, 5, 7, 9}, fired)

	assert.False(t, r.step(false, false))
	assert.Zero(t, r.held)
	assert.True(t, r.step(true, true))
}

func TestRepeaterZeroInterval(t *testing.T) {
	r := repeater{delay: 0, interval: 0}
	for range 5 {
		assert.True(t, r.step(true, false))
	}
}

func TestRunTextAppliesKeys(t *testing.T) {
	session := tetris.NewSession(tetris.WithFirstPiece(tetris.I), tetris.WithSeed(1))
	var out bytes.Buffer

	require.NoError(t, runText(session, strings.NewReader("x\n\nz\n"), &out))

	// "x" is ignored, the empty line waits one frame, "z" drops and waits.
	assert.Equal(t, uint64(2), session.Frames())
	assert.Equal(t, 1, session.Locked())
	assert.Equal(t, 38, session.Score())
	assert.Contains(t, out.String(), textHelp)
	assert.Contains(t, out.String(), "SCORE 38")
}

func TestRunTextStopsAtGameOver(t *testing.T) {
	session := tetris.NewSession(tetris.WithSeed(4))
	var out bytes.Buffer

	input := strings.Repeat("z\n", 200)
	require.NoError(t, runText(session, strings.NewReader(input), &out))

	assert.True(t, session.GameOver())
	assert.Less(t, session.Locked(), 200)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out.String()), "GAME OVER"))
}
