// Package loop drives a tetris.Session from a real-time frame loop. Systems
// run in registration order every frame, buffer their player commands and
// deferred work in the frame's Commands, and the scheduler flushes the
// buffer into the session at the end of the frame.
package loop

import "github.com/plus3/tetra/tetris"

// System is a unit of per-frame behavior. Implementations may keep their
// own state between frames.
type System interface {
	Execute(frame *Frame)
}

// Frame is the context handed to each system for one scheduler pass.
type Frame struct {
	// DeltaTime is the wall-clock time since the previous pass, in seconds.
	DeltaTime float64
	Session   *tetris.Session
	Commands  *Commands
}

func newFrame(dt float64, session *tetris.Session) *Frame {
	return &Frame{
		DeltaTime: dt,
		Session:   session,
		Commands:  newCommands(),
	}
}
