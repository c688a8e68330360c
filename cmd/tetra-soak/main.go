package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetra/internal/loop"
	"github.com/plus3/tetra/tetris"
)

// commandWeights biases random play toward movement so pieces travel before
// they are dropped.
var commandWeights = []struct {
	cmd    loop.Command
	weight int
}{
	{loop.CommandShiftLeft, 6},
	{loop.CommandShiftRight, 6},
	{loop.CommandRotateCW, 4},
	{loop.CommandRotateCCW, 4},
	{loop.CommandSoftDrop, 5},
	{loop.CommandHardDrop, 1},
	{loop.CommandHold, 1},
}

// randomInput issues a weighted random command on roughly one poll in
// three.
type randomInput struct {
	rng   *rand.Rand
	total int
	buf   []loop.Command
}

func newRandomInput(rng *rand.Rand) *randomInput {
	total := 0
	for _, w := range commandWeights {
		total += w.weight
	}
	return &randomInput{rng: rng, total: total}
}

func (r *randomInput) Poll() []loop.Command {
	r.buf = r.buf[:0]
	if r.rng.IntN(3) != 0 {
		return r.buf
	}
	pick := r.rng.IntN(r.total)
	for _, w := range commandWeights {
		if pick < w.weight {
			r.buf = append(r.buf, w.cmd)
			break
		}
		pick -= w.weight
	}
	return r.buf
}

// clearTracker counts four-row clears by watching the lock counter.
type clearTracker struct {
	locked   int
	tetrises int
}

func (c *clearTracker) Execute(frame *loop.Frame) {
	session := frame.Session
	frame.Commands.Defer(func() {
		if session.Locked() != c.locked && session.LastClear() == 4 {
			c.tetrises++
		}
		c.locked = session.Locked()
	})
}

func (c *clearTracker) Reset() {
	c.locked = 0
}

type soakSession struct {
	scheduler *loop.Scheduler
	tracker   *clearTracker
	updates   int64
	newRun    func() *tetris.Session
	finished  bool
}

func newSoakSession(seed uint64, report *Report) *soakSession {
	rng := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
	newRun := func() *tetris.Session {
		return tetris.NewSession(tetris.WithRand(rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))))
	}

	s := &soakSession{
		scheduler: loop.NewScheduler(newRun()),
		tracker:   &clearTracker{},
		newRun:    newRun,
	}
	s.scheduler.Register(&loop.InputSystem{Source: newRandomInput(rng)})
	s.scheduler.Register(&loop.TickSystem{})
	s.scheduler.Register(s.tracker)
	s.scheduler.Register(&loop.GameOverSystem{OnGameOver: func(session *tetris.Session) {
		report.Games.Add(session)
		s.finished = true
	}})
	return s
}

// runSoak drives every session one frame at a time, round robin, until ctx
// ends or each session has run report.FrameLimit frames.
func runSoak(ctx context.Context, report *Report) {
	sessions := make([]*soakSession, report.Sessions)
	for i := range sessions {
		sessions[i] = newSoakSession(report.Seed+uint64(i), report)
	}

	startTime := time.Now()
	const dt = 1.0 / tetris.FramesPerSecond

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		active := 0
		for _, s := range sessions {
			if report.FrameLimit > 0 && s.updates >= report.FrameLimit {
				continue
			}
			active++

			updateStart := time.Now()
			s.scheduler.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			s.updates++
			report.TotalUpdates++

			if s.finished {
				s.finished = false
				s.scheduler.Reset(s.newRun())
			}
		}
		if active == 0 {
			break
		}
	}

	report.TotalTime = time.Since(startTime)
	for _, s := range sessions {
		report.Games.Add(s.scheduler.Session())
		report.Games.Tetrises += s.tracker.tetrises
	}
	report.UpdateTime.Finalize()
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	sessions := flag.Int("sessions", 8, "The number of sessions played side by side.")
	seed := flag.Uint64("seed", 1, "Seed for piece bags and random input.")
	frames := flag.Int64("frames", 0, "Stop each session after this many frames. Zero runs until the duration ends.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *sessions < 1 {
		log.Fatalf("-sessions must be at least 1, got %d", *sessions)
	}

	log.Println("Starting soak test...")

	report := &Report{
		Duration:       *duration,
		Sessions:       *sessions,
		Seed:           *seed,
		FrameLimit:     *frames,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Playing %d sessions for %s...\n", *sessions, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	runSoak(ctx, report)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Printf("Soak finished after %d updates.\n", report.TotalUpdates)

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
