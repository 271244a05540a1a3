package main

import (
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/schedule"
)

// holePenalty weighs each empty cell a placement covers against the depth it
// reaches.
const holePenalty = 4

// placement is a target orientation and column for the current piece.
type placement struct {
	Rotations int
	X         int
	Score     int
}

// plan picks the placement that lands p deepest while covering the fewest
// empty cells. It only considers rotations that are free where p stands.
func plan(b *game.Board, p game.Piece) (placement, bool) {
	best := placement{}
	found := false

	candidate := p
	for r := range 4 {
		if r > 0 {
			candidate = candidate.Rotated()
			if game.Collides(b, candidate) {
				break
			}
		}

		for x := -3; x < b.Cols(); x++ {
			shifted := candidate
			shifted.X = x
			if game.Collides(b, shifted) {
				continue
			}

			landed := land(b, shifted)
			score := evaluate(b, landed)
			if !found || score > best.Score {
				best = placement{Rotations: r, X: x, Score: score}
				found = true
			}
		}
	}
	return best, found
}

func land(b *game.Board, p game.Piece) game.Piece {
	for !game.Collides(b, p.Translated(0, 1)) {
		p = p.Translated(0, 1)
	}
	return p
}

func evaluate(b *game.Board, p game.Piece) int {
	occupied := map[game.Point]bool{}
	for pt := range p.Blocks() {
		occupied[pt] = true
	}

	score := 0
	for pt := range p.Blocks() {
		score += pt.Y

		below := game.Point{X: pt.X, Y: pt.Y + 1}
		if occupied[below] {
			continue
		}
		for y := below.Y; y < b.Rows() && !b.Occupied(pt.X, y); y++ {
			score -= holePenalty
		}
	}
	return score
}

// Bot plays a session by planning a placement for each new piece and
// executing it in one step.
type Bot struct {
	Session *game.Session
	Moves   int
}

// Execute runs one think step. It satisfies schedule.Task.
func (bot *Bot) Execute(*schedule.Frame) {
	s := bot.Session
	if s.State() != game.StatePlaying {
		return
	}

	target, ok := plan(s.Board(), s.Current())
	if !ok {
		s.DropPiece()
		return
	}

	for range target.Rotations {
		s.RotatePiece()
	}
	for dx := target.X - s.Current().X; dx != 0; {
		step := 1
		if dx < 0 {
			step = -1
		}
		if !s.MovePiece(step, 0) {
			break
		}
		dx -= step
	}
	s.DropPiece()
	bot.Moves++
}
