package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/schedule"
	"github.com/plus3/blockfall/sound"
)

const (
	// Held keys repeat after repeatDelay ticks, then every repeatInterval.
	repeatDelay    = 12
	repeatInterval = 3

	debugPanelWidth = 380
)

// Game implements ebiten.Game around one session.
type Game struct {
	Session   *game.Session
	Scheduler *schedule.Scheduler
	Player    *sound.Player
	Backend   *debugui_ebiten.ImguiBackend
	Geometry  Geometry
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.Backend == nil || !g.Backend.WantsKeyboard() {
		g.handleInput()
	}

	g.Scheduler.Once(1.0 / float64(ebiten.TPS()))

	if g.Backend != nil {
		g.Backend.Frame()
	}
	return nil
}

func (g *Game) handleInput() {
	s := g.Session

	if repeating(ebiten.KeyLeft) || repeating(ebiten.KeyA) {
		s.MovePiece(-1, 0)
	}
	if repeating(ebiten.KeyRight) || repeating(ebiten.KeyD) {
		s.MovePiece(1, 0)
	}
	if repeating(ebiten.KeyDown) || repeating(ebiten.KeyS) {
		s.MovePiece(0, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.RotatePiece()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.DropPiece()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.Player.SetMuted(!g.Player.Muted())
	}
	if g.Backend != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.Backend.Overlay.Toggle()
	}
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawSession(screen, g.Geometry, g.Session.Snapshot())

	if g.Backend != nil {
		g.Backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Backend != nil {
		g.Backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
