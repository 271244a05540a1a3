// Package sound plays short synthesized effects for session events.
package sound

import (
	"time"

	"github.com/plus3/blockfall/game"
)

// Note is one tone of a cue. A zero Freq is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Cue returns the notes to play for ev, or nil if the event is silent.
func Cue(ev game.Event) []Note {
	switch ev.Kind {
	case game.EventLock:
		if ev.Lines > 0 {
			return nil
		}
		return []Note{{Freq: 220, Duration: 40 * time.Millisecond}}
	case game.EventLineClear:
		notes := make([]Note, 0, ev.Lines)
		freq := 523.25
		for range min(ev.Lines, 4) {
			notes = append(notes, Note{Freq: freq, Duration: 70 * time.Millisecond})
			freq *= 1.25
		}
		return notes
	case game.EventLevelUp:
		return []Note{
			{Freq: 659.25, Duration: 90 * time.Millisecond},
			{Freq: 0, Duration: 20 * time.Millisecond},
			{Freq: 880, Duration: 160 * time.Millisecond},
		}
	case game.EventGameOver:
		return []Note{
			{Freq: 392, Duration: 180 * time.Millisecond},
			{Freq: 311.13, Duration: 180 * time.Millisecond},
			{Freq: 196, Duration: 400 * time.Millisecond},
		}
	}
	return nil
}

// Length is the total duration of notes.
func Length(notes []Note) time.Duration {
	var total time.Duration
	for _, n := range notes {
		total += n.Duration
	}
	return total
}
