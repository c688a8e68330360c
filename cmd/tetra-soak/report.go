package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/tetra/tetris"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Sessions   int
	Seed       uint64
	FrameLimit int64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Games          Games
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

// Games aggregates every session that ended, plus the ones still running
// when the soak stopped.
type Games struct {
	Finished  int
	Unended   int
	BestScore int
	Score     int
	Lines     int
	Pieces    int
	Tetrises  int
	Dealt     [len(tetris.Kinds)]int
}

// Add folds session's final counters into g.
func (g *Games) Add(session *tetris.Session) {
	if session.GameOver() {
		g.Finished++
	} else {
		g.Unended++
	}
	g.BestScore = max(g.BestScore, session.Score())
	g.Score += session.Score()
	g.Lines += session.Lines()
	g.Pieces += session.Locked()
	for i, kind := range tetris.Kinds {
		g.Dealt[i] += session.Dealt(kind)
	}
}

func (g Games) AvgScore() int {
	n := g.Finished + g.Unended
	if n == 0 {
		return 0
	}
	return g.Score / n
}

type dealtRow struct {
	Kind  tetris.Kind
	Count int
	Share float64
}

// DealtRows reports each kind's share of all pieces dealt.
func (g Games) DealtRows() []dealtRow {
	total := 0
	for _, n := range g.Dealt {
		total += n
	}
	rows := make([]dealtRow, len(tetris.Kinds))
	for i, kind := range tetris.Kinds {
		rows[i] = dealtRow{Kind: kind, Count: g.Dealt[i]}
		if total > 0 {
			rows[i].Share = 100 * float64(g.Dealt[i]) / float64(total)
		}
	}
	return rows
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetra Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Concurrent Sessions:** {{.Sessions}}
- **Seed:** {{.Seed}}
{{- if .FrameLimit}}
- **Frame Limit:** {{.FrameLimit}} per session
{{- end}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
  - **P99:** {{.UpdateTime.P99}}

## Games
- **Finished:** {{.Games.Finished}} ({{.Games.Unended}} still running)
- **Best Score:** {{.Games.BestScore}}
- **Avg Score:** {{.Games.AvgScore}}
- **Lines:** {{.Games.Lines}} ({{.Games.Tetrises}} tetrises)
- **Pieces Locked:** {{.Games.Pieces}}

| Kind | Dealt | Share |
|------|-------|-------|
{{- range .Games.DealtRows}}
| {{.Kind}} | {{.Count}} | {{printf "%.1f%%" .Share}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
