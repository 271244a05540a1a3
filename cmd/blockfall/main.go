package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/schedule"
	"github.com/plus3/blockfall/sound"
)

func main() {
	gameTime := flag.Int("time", 240, "Length of a game in seconds.")
	seed := flag.Uint64("seed", 0, "Piece sequence seed. Zero picks a random one.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	mute := flag.Bool("mute", false, "Disable sound effects.")
	flag.Parse()

	cfg := game.DefaultConfig()
	cfg.GameTime = *gameTime
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var src rand.Source
	if *seed != 0 {
		src = rand.NewPCG(*seed, *seed)
	}

	scheduler := schedule.NewScheduler(time.Now())
	session, err := game.NewSession(cfg, scheduler, game.NewSpawner(cfg.Cols, src))
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	session.Subscribe(logEvent)

	player := sound.NewPlayer()
	if *mute {
		player.SetMuted(true)
	} else if err := player.Init(); err != nil {
		log.Printf("Sound disabled: %v", err)
	}
	defer player.Close()
	session.Subscribe(player.Handle)

	g := &Game{
		Session:   session,
		Scheduler: scheduler,
		Player:    player,
	}

	if *debug {
		g.Geometry = newGeometry(cfg, debugPanelWidth)
		overlay := debugui.NewOverlay(
			debugui.NewSessionInspector(session),
			debugui.NewSchedulerStats(scheduler, 120),
		)
		g.Backend = debugui_ebiten.NewImguiBackend("Blockfall", g.Geometry.Width, g.Geometry.Height, overlay)
	} else {
		g.Geometry = newGeometry(cfg, 0)
		ebiten.SetWindowTitle("Blockfall")
	}
	ebiten.SetWindowSize(g.Geometry.Width, g.Geometry.Height)

	session.Start()

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}

func logEvent(ev game.Event) {
	switch ev.Kind {
	case game.EventLock:
		return
	case game.EventGameOver:
		log.Printf("%s: %s, score %d, level %d", ev.Kind, ev.Reason, ev.Score, ev.Level)
	default:
		log.Printf("%s: lines %d, score %d, level %d", ev.Kind, ev.Lines, ev.Score, ev.Level)
	}
}
