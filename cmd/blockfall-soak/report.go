package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/game"
)

type GameResult struct {
	Seed      uint64
	Score     int
	Level     int
	LevelUps  int
	Lines     int
	Locks     int
	Tetrises  int
	Frames    int
	Remaining int
	Reason    game.EndReason
}

type Report struct {
	// Configuration
	Games    int
	Seed     uint64
	GameTime int
	Think    time.Duration

	// Results
	Results       []GameResult
	TotalTime     time.Duration
	UpdateTime    Stats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
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
}

// Summary aggregates the per-game results.
type Summary struct {
	BestScore int
	MeanScore float64
	MeanLines float64
	MaxLevel  int
	TopOuts   int
	TimeUps   int
}

func (r *Report) Summary() Summary {
	var sum Summary
	if len(r.Results) == 0 {
		return sum
	}

	var score, lines int
	for _, res := range r.Results {
		score += res.Score
		lines += res.Lines
		sum.BestScore = max(sum.BestScore, res.Score)
		sum.MaxLevel = max(sum.MaxLevel, res.Level)
		switch res.Reason {
		case game.EndTopOut:
			sum.TopOuts++
		case game.EndTimeUp:
			sum.TimeUps++
		}
	}
	sum.MeanScore = float64(score) / float64(len(r.Results))
	sum.MeanLines = float64(lines) / float64(len(r.Results))
	return sum
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Games:** {{.Games}}
- **First Seed:** {{.Seed}}
- **Game Length:** {{.GameTime}}s
- **Bot Think Interval:** {{.Think}}

## Games
| # | Seed | Result | Score | Level | Lines | Tetrises | Locks | Time Left |
|---|------|--------|-------|-------|-------|----------|-------|-----------|
{{- range $i, $g := .Results}}
| {{inc $i}} | {{$g.Seed}} | {{$g.Reason}} | {{$g.Score}} | {{$g.Level}} | {{$g.Lines}} | {{$g.Tetrises}} | {{$g.Locks}} | {{clock $g.Remaining}} |
{{- end}}

## Summary
{{- with .Summary}}
- **Best Score:** {{.BestScore}}
- **Mean Score:** {{printf "%.1f" .MeanScore}}
- **Mean Lines:** {{printf "%.1f" .MeanLines}}
- **Highest Level:** {{.MaxLevel}}
- **Top Outs:** {{.TopOuts}}
- **Time Ups:** {{.TimeUps}}
{{- end}}

## Performance Results
- **Total Frames:** {{len .UpdateTime.Samples}}
- **Total Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
		"clock": game.FormatTime,
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
