package tetris

import "math"

const (
	// FramesPerSecond is the tick rate FrameAdvance is designed around.
	FramesPerSecond = 60

	// MaxLevel is the highest selectable level.
	MaxLevel = 15

	// LockDelayFrames is how many grounded frames pass before a piece is
	// tested for immobility.
	LockDelayFrames = 30
)

// GravitySecondsPerRow is the Tetris Worlds gravity curve: the time one
// row of descent takes at level.
func GravitySecondsPerRow(level int) float64 {
	l := float64(level - 1)
	return math.Pow(0.8-l*0.007, l)
}

// GravityFramesPerRow is GravitySecondsPerRow measured in frames.
func GravityFramesPerRow(level int) float64 {
	return GravitySecondsPerRow(level) * FramesPerSecond
}

// GravityPerFrame returns the rows of descent accumulated per frame.
func GravityPerFrame(level int) float64 {
	return 1 / GravityFramesPerRow(level)
}

// LineClearAward returns the score for clearing rows at once at level.
func LineClearAward(rows, level int) int {
	var base int
	switch rows {
	case 1:
		base = 100
	case 2:
		base = 300
	case 3:
		base = 500
	case 4:
		base = 800
	}
	return base * level
}

func clampLevel(level int) int {
	return min(max(level, 0), MaxLevel)
}
