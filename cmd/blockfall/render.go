package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/palette"
)

const (
	cellSize    = 30
	margin      = 40
	panelWidth  = 160
	bevel       = 4
	previewCell = 20
)

var (
	windowColor = color.RGBA{24, 24, 28, 255}
	gridColor   = color.RGBA{40, 40, 46, 255}
	frameColor  = color.RGBA{128, 128, 128, 255}
	shadeColor  = color.RGBA{0, 0, 0, 180}
)

// Geometry places the board and side panel in the window.
type Geometry struct {
	BoardX, BoardY int
	PanelX         int
	Rows, Cols     int
	Width, Height  int
}

func newGeometry(cfg game.Config, left int) Geometry {
	g := Geometry{
		BoardX: left + margin,
		BoardY: margin,
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
	}
	g.PanelX = g.BoardX + cfg.Cols*cellSize + margin/2
	g.Width = g.PanelX + panelWidth
	g.Height = g.BoardY + cfg.Rows*cellSize + margin
	return g
}

// cellOrigin is the top-left pixel of board cell (x, y).
func (g Geometry) cellOrigin(x, y int) (float32, float32) {
	return float32(g.BoardX + x*cellSize), float32(g.BoardY + y*cellSize)
}

func drawSession(screen *ebiten.Image, geo Geometry, snap game.Snapshot) {
	screen.Fill(windowColor)

	boardW := float32(geo.Cols * cellSize)
	boardH := float32(geo.Rows * cellSize)
	bx, by := geo.cellOrigin(0, 0)
	vector.DrawFilledRect(screen, bx, by, boardW, boardH, palette.Background, false)

	for y, row := range snap.Grid {
		for x, c := range row {
			px, py := geo.cellOrigin(x, y)
			if c == 0 {
				vector.StrokeRect(screen, px, py, cellSize, cellSize, 1, gridColor, false)
				continue
			}
			drawBlock(screen, px, py, cellSize, palette.Color(c))
		}
	}

	if snap.State == game.StatePlaying {
		ghost := snap.Ghost()
		ghostColor := palette.Color(ghost.Color)
		ghostColor.A = 110
		for pt := range ghost.Blocks() {
			if pt.Y < 0 {
				continue
			}
			px, py := geo.cellOrigin(pt.X, pt.Y)
			vector.StrokeRect(screen, px+2, py+2, cellSize-4, cellSize-4, 2, ghostColor, false)
		}

		for pt := range snap.Current.Blocks() {
			if pt.Y < 0 {
				continue
			}
			px, py := geo.cellOrigin(pt.X, pt.Y)
			drawBlock(screen, px, py, cellSize, palette.Color(snap.Current.Color))
		}
	}

	vector.StrokeRect(screen, bx-2, by-2, boardW+4, boardH+4, 2, frameColor, false)

	drawPanel(screen, geo, snap)

	if snap.State == game.StateGameOver {
		vector.DrawFilledRect(screen, bx, by+boardH/2-50, boardW, 100, shadeColor, false)
		cx := int(bx) + int(boardW)/2 - 40
		cy := int(by+boardH/2) - 35
		ebitenutil.DebugPrintAt(screen, "GAME OVER", cx, cy)
		ebitenutil.DebugPrintAt(screen, snap.Reason.String(), cx, cy+20)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("score %d", snap.Score), cx, cy+40)
		ebitenutil.DebugPrintAt(screen, "R to restart", cx, cy+60)
	}
}

// drawBlock fills a cell with a lighter top-left edge and a darker
// bottom-right edge.
func drawBlock(screen *ebiten.Image, x, y, size float32, c color.RGBA) {
	light := palette.Lighten(c, 30)
	dark := palette.Darken(c, 30)

	vector.DrawFilledRect(screen, x, y, size, size, dark, false)
	vector.DrawFilledRect(screen, x, y, size-bevel, size-bevel, light, false)
	vector.DrawFilledRect(screen, x+bevel, y+bevel, size-2*bevel, size-2*bevel, c, false)
}

func drawPanel(screen *ebiten.Image, geo Geometry, snap game.Snapshot) {
	x := geo.PanelX
	y := geo.BoardY

	ebitenutil.DebugPrintAt(screen, "NEXT", x, y)
	y += 20
	next := snap.Next
	if minPt, _, ok := next.Shape.Extent(); ok {
		for pt := range next.Shape.Blocks() {
			px := float32(x + (pt.X-minPt.X)*previewCell)
			py := float32(y + (pt.Y-minPt.Y)*previewCell)
			drawBlock(screen, px, py, previewCell, palette.Color(next.Color))
		}
	}
	y += 5 * previewCell

	for _, line := range []struct {
		label, value string
	}{
		{"SCORE", fmt.Sprintf("%d", snap.Score)},
		{"LEVEL", fmt.Sprintf("%d", snap.Level)},
		{"LINES", fmt.Sprintf("%d", snap.Lines)},
		{"TIME", snap.Time()},
	} {
		ebitenutil.DebugPrintAt(screen, line.label, x, y)
		ebitenutil.DebugPrintAt(screen, line.value, x, y+16)
		y += 48
	}

	for _, help := range []string{
		"Arrows  move",
		"Up      rotate",
		"Space   drop",
		"R       restart",
		"M       mute",
	} {
		ebitenutil.DebugPrintAt(screen, help, x, y)
		y += 16
	}
}
