package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/schedule"
)

// frameStep is the virtual time, in seconds, advanced per loop iteration.
const frameStep = 1.0 / 60.0

func main() {
	games := flag.Int("games", 20, "Number of games to play.")
	seed := flag.Uint64("seed", 1, "Seed for the first game; game i uses seed+i.")
	gameTime := flag.Int("time", 240, "Length of a game in seconds.")
	think := flag.Duration("think", 250*time.Millisecond, "Virtual time between bot moves.")
	flag.Parse()

	cfg := game.DefaultConfig()
	cfg.GameTime = *gameTime
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Playing %d games of %ds...\n", *games, *gameTime)

	report := &Report{
		Games:    *games,
		Seed:     *seed,
		GameTime: *gameTime,
		Think:    *think,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	for i := range *games {
		result, err := playGame(cfg, *seed+uint64(i), *think, &report.UpdateTime)
		if err != nil {
			log.Fatalf("Game %d failed: %v", i+1, err)
		}
		report.Results = append(report.Results, result)
		log.Printf("Game %d: %s, score %d, lines %d\n", i+1, result.Reason, result.Score, result.Lines)
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// playGame runs one session to completion on a virtual clock, recording the
// wall time of every frame in updates.
func playGame(cfg game.Config, seed uint64, think time.Duration, updates *Stats) (GameResult, error) {
	sched := schedule.NewScheduler(time.Unix(0, 0))
	session, err := game.NewSession(cfg, sched, game.NewSpawner(cfg.Cols, rand.NewPCG(seed, seed)))
	if err != nil {
		return GameResult{}, err
	}

	result := GameResult{Seed: seed}
	session.Subscribe(func(ev game.Event) {
		if ev.Kind == game.EventLevelUp {
			result.LevelUps++
		}
	})

	bot := &Bot{Session: session}
	botTask := sched.Every("bot", think, bot)
	defer sched.Cancel(botTask)

	session.Start()
	for !session.IsOver() {
		updateStart := time.Now()
		sched.Once(frameStep)
		updates.Samples = append(updates.Samples, time.Since(updateStart))
		result.Frames++
	}

	stats := session.Stats()
	result.Score = session.Score()
	result.Level = session.Level()
	result.Lines = stats.Lines()
	result.Locks = stats.Locks()
	result.Tetrises = stats.Clears(4)
	result.Reason = session.EndReason()
	result.Remaining = session.Remaining()
	return result, nil
}
