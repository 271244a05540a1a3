package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanOnEmptyBoard(t *testing.T) {
	b := game.NewBoard(20, 10)
	p := game.NewPiece(game.KindO, 10)

	target, ok := plan(b, p)
	require.True(t, ok)

	shifted := p
	shifted.X = target.X
	landed := land(b, shifted)
	for pt := range landed.Blocks() {
		assert.GreaterOrEqual(t, pt.Y, 18)
	}
}

func TestEvaluatePenalisesHoles(t *testing.T) {
	b := game.NewBoard(20, 10)

	flat := land(b, game.NewPiece(game.KindI, 10))
	upright := land(b, game.NewPiece(game.KindI, 10).Rotated())
	assert.Greater(t, evaluate(b, upright), 0)
	assert.Greater(t, evaluate(b, flat), 0)

	// one row up leaves four empty cells underneath
	raised := flat.Translated(0, -1)
	assert.Less(t, evaluate(b, raised), evaluate(b, flat))
}

func TestPlayGame(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.GameTime = 30

	var updates Stats
	result, err := playGame(cfg, 7, 100*time.Millisecond, &updates)
	require.NoError(t, err)

	assert.NotEqual(t, game.EndNone, result.Reason)
	assert.Greater(t, result.Locks, 0)
	assert.Equal(t, result.Frames, len(updates.Samples))
	if result.Reason == game.EndTimeUp {
		assert.Equal(t, 0, result.Remaining)
	}
	assert.Equal(t, game.LevelFor(result.Score), result.Level)
}

func TestPlayGameIsDeterministic(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.GameTime = 20

	var updates Stats
	first, err := playGame(cfg, 3, 100*time.Millisecond, &updates)
	require.NoError(t, err)
	second, err := playGame(cfg, 3, 100*time.Millisecond, &updates)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	report := &Report{
		Games:    2,
		Seed:     9,
		GameTime: 240,
		Think:    250 * time.Millisecond,
		Results: []GameResult{
			{Seed: 9, Score: 1200, Level: 2, Lines: 10, Locks: 40, Reason: game.EndTimeUp},
			{Seed: 10, Score: 300, Level: 1, Lines: 2, Locks: 25, Remaining: 75, Reason: game.EndTopOut},
		},
	}

	sum := report.Summary()
	assert.Equal(t, 1200, sum.BestScore)
	assert.InDelta(t, 750.0, sum.MeanScore, 1e-9)
	assert.Equal(t, 2, sum.MaxLevel)
	assert.Equal(t, 1, sum.TopOuts)
	assert.Equal(t, 1, sum.TimeUps)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Blockfall Soak Report")
	assert.Contains(t, out, "| 1 | 9 | time up | 1200 | 2 | 10 | 0 | 40 | 00:00 |")
	assert.Contains(t, out, "| 2 | 10 | top out | 300 | 1 | 2 | 0 | 25 | 01:15 |")
	assert.Contains(t, out, "- **Mean Score:** 750.0")
	assert.Contains(t, out, "- **Bot Think Interval:** 250ms")
}
