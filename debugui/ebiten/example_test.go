package ebiten_test

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/schedule"
)

// Game implements ebiten.Game and draws the debug overlay over a session.
type Game struct {
	scheduler *schedule.Scheduler
	backend   *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Advance the session before building the ImGui frame
	g.scheduler.Once(1.0 / 60.0)
	g.backend.Frame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board to screen
	// ...

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	scheduler := schedule.NewScheduler(time.Now())

	cfg := game.DefaultConfig()
	session, err := game.NewSession(cfg, scheduler, game.NewSpawner(cfg.Cols, nil))
	if err != nil {
		panic(err)
	}
	session.Start()

	overlay := debugui.NewOverlay(
		debugui.NewSessionInspector(session),
		debugui.NewSchedulerStats(scheduler, 120),
		debugui.WindowFunc(func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from blockfall!")
			imgui.End()
		}),
	)

	g := &Game{
		scheduler: scheduler,
		backend:   debugui_ebiten.NewImguiBackend("Blockfall ImGui Example", 1280, 720, overlay),
	}

	if err := ebiten.RunGame(g); err != nil {
		panic(err)
	}
}
