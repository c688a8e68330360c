package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/plus3/tetra/internal/boardart"
	"github.com/plus3/tetra/internal/loop"
	"github.com/plus3/tetra/tetris"
)

var textKeys = map[rune]loop.Command{
	'w': loop.CommandHold,
	'q': loop.CommandRotateCW,
	'e': loop.CommandRotateCCW,
	'a': loop.CommandShiftLeft,
	'd': loop.CommandShiftRight,
	's': loop.CommandSoftDrop,
	'z': loop.CommandHardDrop,
}

const textHelp = "w hold, q/e rotate, a/d shift, s soft drop, z hard drop, enter to wait a frame"

// runText plays session from line-oriented input. Each key on a line is
// applied and followed by one frame; an empty line advances one frame.
// Unknown keys are ignored. It returns when the game ends or input runs out.
func runText(session *tetris.Session, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, textHelp)
	fmt.Fprint(out, boardart.Render(session))

	scanner := bufio.NewScanner(in)
	for !session.GameOver() && scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			session.FrameAdvance()
		}
		for _, r := range line {
			cmd, ok := textKeys[r]
			if !ok {
				continue
			}
			loop.Apply(session, cmd)
			session.FrameAdvance()
			if session.GameOver() {
				break
			}
		}
		fmt.Fprint(out, boardart.Render(session))
	}
	return scanner.Err()
}
