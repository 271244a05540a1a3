package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/schedule"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/termui"
)

func main() {
	gameTime := flag.Int("time", 240, "Length of a game in seconds.")
	seed := flag.Uint64("seed", 0, "Piece sequence seed. Zero picks a random one.")
	frame := flag.Duration("frame", 30*time.Millisecond, "Redraw and loop interval.")
	mute := flag.Bool("mute", false, "Disable sound effects.")
	logFile := flag.String("log", "", "Write log output to this file instead of discarding it.")
	flag.Parse()

	// The terminal owns stdout and stderr while the game runs.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := game.DefaultConfig()
	cfg.GameTime = *gameTime
	cfg.TickPeriod = *frame

	var src rand.Source
	if *seed != 0 {
		src = rand.NewPCG(*seed, *seed)
	}

	scheduler := schedule.NewScheduler(time.Now())
	session, err := game.NewSession(cfg, scheduler, game.NewSpawner(cfg.Cols, src))
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create session: %v", err)
	}

	session.Subscribe(func(ev game.Event) {
		log.Printf("%s: lines %d, score %d, level %d", ev.Kind, ev.Lines, ev.Score, ev.Level)
	})

	player := sound.NewPlayer()
	if !*mute {
		if err := player.Init(); err != nil {
			log.Printf("Sound disabled: %v", err)
		}
	}
	defer player.Close()
	session.Subscribe(player.Handle)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session.Start()

	err = termui.Run(ctx, screen, session, scheduler, *frame)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Loop ended: %v", err)
	}
	log.Printf("Final score %d, level %d", session.Score(), session.Level())
}
