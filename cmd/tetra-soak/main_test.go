package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/tetra/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func soak(t *testing.T, seed uint64) *Report {
	t.Helper()
	report := &Report{Sessions: 2, Seed: seed, FrameLimit: 900}
	runSoak(context.Background(), report)
	return report
}

func TestRunSoakHonorsFrameLimit(t *testing.T) {
	report := soak(t, 7)

	assert.Equal(t, int64(1800), report.TotalUpdates)
	assert.Len(t, report.UpdateTime.Samples, 1800)
	assert.LessOrEqual(t, report.UpdateTime.Min, report.UpdateTime.P99)
	assert.LessOrEqual(t, report.UpdateTime.P99, report.UpdateTime.Max)

	games := report.Games
	assert.GreaterOrEqual(t, games.Finished+games.Unended, 2)
	dealt := 0
	for _, n := range games.Dealt {
		dealt += n
	}
	// Every locked piece was dealt, and each running game holds one more.
	assert.GreaterOrEqual(t, dealt, games.Pieces+games.Unended)
}

func TestRunSoakIsDeterministic(t *testing.T) {
	a := soak(t, 3)
	b := soak(t, 3)
	assert.Equal(t, a.Games, b.Games)
}

func TestRunSoakStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	report := &Report{Sessions: 1, Seed: 1}
	done := make(chan struct{})
	go func() {
		runSoak(ctx, report)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("soak did not stop after the context ended")
	}
	assert.Positive(t, report.TotalUpdates)
}

func TestReportGenerate(t *testing.T) {
	report := soak(t, 5)
	report.Duration = time.Second

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "# Tetra Soak Report")
	assert.Contains(t, out, "- **Concurrent Sessions:** 2")
	assert.Contains(t, out, "- **Frame Limit:** 900 per session")
	for _, kind := range tetris.Kinds {
		assert.Contains(t, out, "| "+kind.String()+" |")
	}
	assert.NotContains(t, out, "GC Pause")
}

func TestStatsFinalize(t *testing.T) {
	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)

	s := Stats{Samples: []time.Duration{4, 1, 3, 2}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(4), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)
	assert.Equal(t, time.Duration(3), s.P99)
	// Samples keep their recording order.
	assert.Equal(t, []time.Duration{4, 1, 3, 2}, s.Samples)
}
