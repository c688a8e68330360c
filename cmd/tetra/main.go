package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tetra/internal/config"
	"github.com/plus3/tetra/internal/debugui"
	"github.com/plus3/tetra/internal/loop"
	"github.com/plus3/tetra/internal/scores"
	"github.com/plus3/tetra/tetris"
)

const (
	debugPanelWidth = 420
	topScores       = 5
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML settings file. Defaults apply when empty.")
	textMode := flag.Bool("text", false, "Play in the terminal instead of a window.")
	level := flag.Int("level", -1, "Starting level, overriding the config when >= 0.")
	seed := flag.Uint64("seed", 0, "Bag seed, overriding the config when non-zero.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *level >= 0 {
		cfg.StartLevel = *level
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *debug {
		cfg.DebugOverlay = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	var store *scores.Store
	if cfg.ScoresDB != "" {
		store, err = scores.Open(cfg.ScoresDB)
		if err != nil {
			log.Printf("High scores disabled: %v", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	newSession := func() *tetris.Session {
		return tetris.NewSession(cfg.SessionOptions()...)
	}
	onGameOver := func(session *tetris.Session) {
		log.Printf("Game over: score %d, level %d, %d lines, %d pieces", session.Score(), session.Level(), session.Lines(), session.Locked())
		recordScore(store, cfg.Player, session)
	}

	if *textMode {
		session := newSession()
		if err := runText(session, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
		if session.GameOver() {
			onGameOver(session)
		}
		return
	}

	scheduler := loop.NewScheduler(newSession())
	keys := newKeyboard(cfg.Input)
	tick := &loop.TickSystem{}
	scheduler.Register(&loop.InputSystem{Source: keys})
	scheduler.Register(tick)
	scheduler.Register(&loop.GameOverSystem{OnGameOver: onGameOver})

	game := &Game{
		Scheduler:  scheduler,
		NewSession: newSession,
		Renderer:   renderer{scale: float32(cfg.Window.Scale)},
	}

	width := screenCols * cellSize * cfg.Window.Scale
	height := screenRows * cellSize * cfg.Window.Scale

	if cfg.DebugOverlay {
		backend := debugui.NewImguiBackend("tetra (debug)", width+debugPanelWidth, height)
		overlay := &debugui.ImguiSystem{}
		keys.Captured = func() bool { return overlay.InputState.WantCaptureKeyboard }

		inspector := &debugui.SessionInspector{Scheduler: scheduler, Tick: tick}
		perf := debugui.NewPerformanceStats(120)
		timer := debugui.NewFrameTimer()
		overlay.Add(inspector.Render)
		overlay.Add(func() { perf.Render(scheduler.GetStats(), timer.GetDeltaTime()) })

		scheduler.Register(overlay)
		game.Imgui = &backend
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("tetra")
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}

// recordScore stores the finished session and logs the leaderboard. It does
// nothing without a store.
func recordScore(store *scores.Store, player string, session *tetris.Session) {
	if store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry, err := store.Record(ctx, scores.EntryFromSession(player, session, time.Now()))
	if err != nil {
		log.Printf("Failed to record score: %v", err)
		return
	}
	top, err := store.Top(ctx, topScores)
	if err != nil {
		log.Printf("Failed to read high scores: %v", err)
		return
	}
	log.Println("High scores:")
	for i, e := range top {
		marker := ""
		if e.ID == entry.ID {
			marker = " <- new"
		}
		log.Printf("  %d. %-12s %8d  level %2d  lines %3d%s", i+1, e.Name, e.Score, e.Level, e.Lines, marker)
	}
}
