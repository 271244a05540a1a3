// Package termui renders a session into a terminal and maps key presses to
// session actions.
package termui

import (
	"image/color"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/palette"
)

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

const (
	originX = 1
	originY = 1

	// cellWidth is the number of terminal columns per board cell, which keeps
	// blocks roughly square.
	cellWidth = 2
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault
	labelStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

// BoardWidth is the number of terminal columns the framed board occupies.
func BoardWidth(cols int) int {
	return cols*cellWidth + 2
}

// Draw paints snap onto c. The caller is responsible for clearing and
// showing the screen.
func Draw(c Canvas, snap game.Snapshot) {
	rows, cols := snap.Rows(), snap.Cols()

	drawFrame(c, rows, cols)

	for y := range rows {
		for x := range cols {
			drawCell(c, x, y, snap.Grid[y][x])
		}
	}

	if snap.State == game.StatePlaying {
		ghost := snap.Ghost()
		ghostStyle := tcell.StyleDefault.Foreground(tcellColor(palette.Color(ghost.Color)))
		for pt := range ghost.Blocks() {
			if pt.Y >= 0 && pt.Y < rows && snap.Grid[pt.Y][pt.X] == 0 {
				drawRun(c, originX+1+pt.X*cellWidth, originY+1+pt.Y, "░░", ghostStyle)
			}
		}

		for pt := range snap.Current.Blocks() {
			if pt.Y >= 0 && pt.Y < rows {
				drawCell(c, pt.X, pt.Y, snap.Current.Color)
			}
		}
	}

	drawPanel(c, snap, originX+BoardWidth(cols)+2)

	if snap.State == game.StateGameOver {
		drawGameOver(c, snap)
	}
}

func drawFrame(c Canvas, rows, cols int) {
	right := originX + BoardWidth(cols) - 1
	bottom := originY + rows + 1

	for x := originX + 1; x < right; x++ {
		put(c, x, originY, '─', frameStyle)
		put(c, x, bottom, '─', frameStyle)
	}
	for y := originY + 1; y < bottom; y++ {
		put(c, originX, y, '│', frameStyle)
		put(c, right, y, '│', frameStyle)
	}
	put(c, originX, originY, '┌', frameStyle)
	put(c, right, originY, '┐', frameStyle)
	put(c, originX, bottom, '└', frameStyle)
	put(c, right, bottom, '┘', frameStyle)
}

func drawCell(c Canvas, x, y int, cell game.Cell) {
	sx := originX + 1 + x*cellWidth
	sy := originY + 1 + y
	if cell == 0 {
		drawRun(c, sx, sy, " ·", frameStyle)
		return
	}
	style := tcell.StyleDefault.Background(tcellColor(palette.Color(cell)))
	drawRun(c, sx, sy, "  ", style)
}

func drawPanel(c Canvas, snap game.Snapshot, x int) {
	y := originY

	drawRun(c, x, y, "NEXT", labelStyle)
	y++
	next := snap.Next
	if minPt, _, ok := next.Shape.Extent(); ok {
		for pt := range next.Shape.Blocks() {
			style := tcell.StyleDefault.Background(tcellColor(palette.Color(next.Color)))
			drawRun(c, x+(pt.X-minPt.X)*cellWidth, y+1+pt.Y-minPt.Y, "  ", style)
		}
	}
	y += 6

	for _, field := range []struct {
		label string
		value string
	}{
		{"SCORE", strconv.Itoa(snap.Score)},
		{"LEVEL", strconv.Itoa(snap.Level)},
		{"LINES", strconv.Itoa(snap.Lines)},
		{"TIME", snap.Time()},
	} {
		drawRun(c, x, y, field.label, labelStyle)
		drawRun(c, x, y+1, field.value, textStyle)
		y += 3
	}

	drawRun(c, x, y, "←→ move  ↑ rotate", labelStyle)
	drawRun(c, x, y+1, "↓ soft  ␣ drop", labelStyle)
	drawRun(c, x, y+2, "r restart  q quit", labelStyle)
}

func drawGameOver(c Canvas, snap game.Snapshot) {
	width := BoardWidth(snap.Cols())
	mid := originY + snap.Rows()/2

	lines := []string{
		"GAME OVER",
		snap.Reason.String(),
		"score " + strconv.Itoa(snap.Score),
		"r to restart",
	}
	for i, line := range lines {
		runes := []rune(line)
		x := originX + max((width-len(runes))/2, 1)
		drawRun(c, x, mid-1+i, line, alertStyle)
	}
}

func drawRun(c Canvas, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		put(c, x, y, r, style)
		x++
	}
}

// put draws one rune, dropping anything outside the canvas.
func put(c Canvas, x, y int, r rune, style tcell.Style) {
	width, height := c.Size()
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	c.SetContent(x, y, r, nil, style)
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
