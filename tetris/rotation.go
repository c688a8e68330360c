package tetris

// Rotation is one of the four SRS orientation states.
type Rotation uint8

const (
	Up Rotation = iota
	Right
	Down
	Left
)

// Rotate returns the state one step clockwise or counter-clockwise.
func (r Rotation) Rotate(clockwise bool) Rotation {
	if clockwise {
		return (r + 1) % 4
	}
	return (r + 3) % 4
}

func (r Rotation) String() string {
	switch r {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	}
	return "Rotation(?)"
}

// Direction is a horizontal shift direction.
type Direction int8

const (
	ShiftLeft  Direction = -1
	ShiftRight Direction = 1
)
