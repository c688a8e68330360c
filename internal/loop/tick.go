package loop

import "github.com/plus3/tetra/tetris"

// DefaultMaxCatchUp bounds how many simulation frames a single pass may
// advance after a stall.
const DefaultMaxCatchUp = 5

// TickSystem converts wall-clock delta time into fixed 60 Hz session frames.
// Each whole frame elapsed defers one FrameAdvance, which runs after the
// frame's player commands.
type TickSystem struct {
	// MaxCatchUp caps frames advanced per pass. Zero means DefaultMaxCatchUp.
	MaxCatchUp int
	// Paused stops frames from advancing while still draining the
	// accumulator.
	Paused bool

	accumulator float64
	dropped     int
}

const frameSeconds = 1.0 / tetris.FramesPerSecond

func (t *TickSystem) Execute(frame *Frame) {
	t.accumulator += frame.DeltaTime
	if t.Paused {
		t.accumulator = 0
		return
	}

	limit := t.MaxCatchUp
	if limit <= 0 {
		limit = DefaultMaxCatchUp
	}

	session := frame.Session
	steps := 0
	for t.accumulator >= frameSeconds {
		t.accumulator -= frameSeconds
		if steps == limit {
			t.dropped++
			continue
		}
		steps++
		frame.Commands.Defer(session.FrameAdvance)
	}
}

// Dropped returns how many frames were discarded by the catch-up cap.
func (t *TickSystem) Dropped() int {
	return t.dropped
}

// Reset clears the accumulated time.
func (t *TickSystem) Reset() {
	t.accumulator = 0
}

// GameOverSystem calls OnGameOver once, on the first frame that observes the
// session in its game-over state. Reset re-arms it.
type GameOverSystem struct {
	OnGameOver func(*tetris.Session)

	fired bool
}

func (g *GameOverSystem) Execute(frame *Frame) {
	if g.fired || !frame.Session.GameOver() {
		return
	}
	g.fired = true
	if g.OnGameOver != nil {
		g.OnGameOver(frame.Session)
	}
}

// Reset re-arms the callback for a new session.
func (g *GameOverSystem) Reset() {
	g.fired = false
}

// InputSource yields the commands a player issued since the last call.
type InputSource interface {
	Poll() []Command
}

// InputSystem pushes polled commands into the frame.
type InputSystem struct {
	Source InputSource
}

func (s *InputSystem) Execute(frame *Frame) {
	for _, cmd := range s.Source.Poll() {
		frame.Commands.Push(cmd)
	}
}
