package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/tetra/internal/debugui"
	"github.com/plus3/tetra/internal/loop"
	"github.com/plus3/tetra/tetris"
)

// Game implements ebiten.Game around a loop scheduler.
type Game struct {
	Scheduler  *loop.Scheduler
	NewSession func() *tetris.Session
	Renderer   renderer

	// Imgui is nil unless the debug overlay is enabled.
	Imgui *debugui.ImguiBackend
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.Scheduler.Session().GameOver() {
		g.Scheduler.Reset(g.NewSession())
	}

	if g.Imgui != nil {
		g.Imgui.BeginFrame()
	}
	g.Scheduler.Once(1.0 / tetris.FramesPerSecond)
	if g.Imgui != nil {
		g.Imgui.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen, g.Scheduler.Session())
	if g.Imgui != nil {
		g.Imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Imgui != nil {
		g.Imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
