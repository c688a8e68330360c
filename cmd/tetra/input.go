package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/tetra/internal/config"
	"github.com/plus3/tetra/internal/loop"
)

// repeater implements delayed auto shift for one held key, counted in
// polls. A fresh press fires at once; holding fires again after delay polls
// and then every interval polls.
type repeater struct {
	delay    int
	interval int
	held     int
}

func (r *repeater) step(pressed, justPressed bool) bool {
	switch {
	case justPressed:
		r.held = 0
		return true
	case !pressed:
		r.held = 0
		return false
	}
	r.held++
	if r.held < r.delay {
		return false
	}
	return (r.held-r.delay)%max(r.interval, 1) == 0
}

type keyBinding struct {
	keys []ebiten.Key
	cmd  loop.Command
}

// Single-shot bindings. Shifts and soft drop repeat and are handled apart.
var pressBindings = []keyBinding{
	{keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyX}, cmd: loop.CommandRotateCW},
	{keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyControlLeft, ebiten.KeyControlRight}, cmd: loop.CommandRotateCCW},
	{keys: []ebiten.Key{ebiten.KeySpace}, cmd: loop.CommandHardDrop},
	{keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyShiftLeft, ebiten.KeyShiftRight}, cmd: loop.CommandHold},
}

// keyboard reads ebiten key state once per loop pass.
type keyboard struct {
	left, right, down repeater

	// Captured reports whether another consumer, such as the debug
	// overlay, owns the keyboard this frame.
	Captured func() bool

	buf []loop.Command
}

func newKeyboard(in config.Input) *keyboard {
	return &keyboard{
		left:  repeater{delay: in.DASFrames, interval: in.ARRFrames},
		right: repeater{delay: in.DASFrames, interval: in.ARRFrames},
		down:  repeater{delay: in.SoftDropFrames, interval: in.SoftDropFrames},
	}
}

func (k *keyboard) Poll() []loop.Command {
	k.buf = k.buf[:0]
	if k.Captured != nil && k.Captured() {
		k.left.held, k.right.held, k.down.held = 0, 0, 0
		return k.buf
	}

	if k.left.step(ebiten.IsKeyPressed(ebiten.KeyLeft), inpututil.IsKeyJustPressed(ebiten.KeyLeft)) {
		k.buf = append(k.buf, loop.CommandShiftLeft)
	}
	if k.right.step(ebiten.IsKeyPressed(ebiten.KeyRight), inpututil.IsKeyJustPressed(ebiten.KeyRight)) {
		k.buf = append(k.buf, loop.CommandShiftRight)
	}
	if k.down.step(ebiten.IsKeyPressed(ebiten.KeyDown), inpututil.IsKeyJustPressed(ebiten.KeyDown)) {
		k.buf = append(k.buf, loop.CommandSoftDrop)
	}

	for _, b := range pressBindings {
		for _, key := range b.keys {
			if inpututil.IsKeyJustPressed(key) {
				k.buf = append(k.buf, b.cmd)
				break
			}
		}
	}
	return k.buf
}
