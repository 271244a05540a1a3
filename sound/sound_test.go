package sound_test

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/sound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCue(t *testing.T) {
	assert.Nil(t, sound.Cue(game.Event{Kind: game.EventStart}))
	assert.Len(t, sound.Cue(game.Event{Kind: game.EventLock}), 1)
	assert.Nil(t, sound.Cue(game.Event{Kind: game.EventLock, Lines: 2}), "line clears have their own cue")

	for lines := 1; lines <= 4; lines++ {
		notes := sound.Cue(game.Event{Kind: game.EventLineClear, Lines: lines})
		require.Len(t, notes, lines)
		for i := 1; i < len(notes); i++ {
			assert.Greater(t, notes[i].Freq, notes[i-1].Freq)
		}
	}
	assert.Len(t, sound.Cue(game.Event{Kind: game.EventLineClear, Lines: 6}), 4)

	over := sound.Cue(game.Event{Kind: game.EventGameOver, Reason: game.EndTimeUp})
	assert.Equal(t, 760*time.Millisecond, sound.Length(over))
}

func TestRender(t *testing.T) {
	rate := beep.SampleRate(8000)
	notes := sound.Cue(game.Event{Kind: game.EventLevelUp})

	stream, err := sound.Render(rate, notes)
	require.NoError(t, err)

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(buf)
		total += n
		for _, s := range buf[:n] {
			assert.LessOrEqual(t, s[0], 1.0)
			assert.GreaterOrEqual(t, s[0], -1.0)
		}
		if !ok {
			break
		}
	}

	want := 0
	for _, n := range notes {
		want += rate.N(n.Duration)
	}
	assert.Equal(t, want, total)
}

func TestPlayerWithoutSpeakerIsSilent(t *testing.T) {
	p := sound.NewPlayer()
	p.SetMuted(true)
	assert.True(t, p.Muted())

	assert.NotPanics(t, func() {
		p.Handle(game.Event{Kind: game.EventGameOver})
		p.Close()
	})
}
