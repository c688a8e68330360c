package loop

import "github.com/plus3/tetra/tetris"

// Command is a player input applied to a session.
type Command uint8

const (
	CommandShiftLeft Command = iota + 1
	CommandShiftRight
	CommandRotateCW
	CommandRotateCCW
	CommandSoftDrop
	CommandHardDrop
	CommandHold
)

var commandNames = [...]string{
	CommandShiftLeft:  "ShiftLeft",
	CommandShiftRight: "ShiftRight",
	CommandRotateCW:   "RotateCW",
	CommandRotateCCW:  "RotateCCW",
	CommandSoftDrop:   "SoftDrop",
	CommandHardDrop:   "HardDrop",
	CommandHold:       "Hold",
}

func (c Command) String() string {
	if int(c) < len(commandNames) && commandNames[c] != "" {
		return commandNames[c]
	}
	return "Command(?)"
}

// Apply runs cmd against session and reports whether it changed anything.
func Apply(session *tetris.Session, cmd Command) bool {
	switch cmd {
	case CommandShiftLeft:
		return session.Shift(tetris.ShiftLeft)
	case CommandShiftRight:
		return session.Shift(tetris.ShiftRight)
	case CommandRotateCW:
		return session.Rotate(true)
	case CommandRotateCCW:
		return session.Rotate(false)
	case CommandSoftDrop:
		return session.SoftDrop()
	case CommandHardDrop:
		session.HardDrop()
		return true
	case CommandHold:
		return session.Hold()
	}
	return false
}

// Commands buffers the inputs and deferred work produced while systems run.
// Everything is applied in push order when the frame is flushed, so systems
// see a consistent session for the whole frame.
type Commands struct {
	inputs []Command
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues a player command.
func (c *Commands) Push(cmd Command) {
	c.inputs = append(c.inputs, cmd)
}

// Defer queues a function to run after the buffered commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of buffered player commands.
func (c *Commands) Len() int {
	return len(c.inputs)
}

// Flush applies the buffered commands to session, then runs deferred
// functions, resetting the buffer. It returns how many commands changed the
// session.
func (c *Commands) Flush(session *tetris.Session) int {
	applied := 0
	for _, cmd := range c.inputs {
		if Apply(session, cmd) {
			applied++
		}
	}
	for _, fn := range c.defers {
		fn()
	}

	c.inputs = c.inputs[:0]
	c.defers = c.defers[:0]
	return applied
}
