package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
)

type field struct {
	name  string
	value string
}

// SessionInspector shows live session state and offers a few controls.
type SessionInspector struct {
	session *game.Session
}

func NewSessionInspector(session *game.Session) *SessionInspector {
	return &SessionInspector{session: session}
}

func sessionFields(s *game.Session) []field {
	board := s.Board()
	cur := s.Current()
	return []field{
		{"State", s.State().String()},
		{"Score", fmt.Sprintf("%d", s.Score())},
		{"Level", fmt.Sprintf("%d", s.Level())},
		{"Time", game.FormatTime(s.Remaining())},
		{"Drop Interval", s.DropInterval().String()},
		{"Piece", fmt.Sprintf("%s at (%d, %d)", cur.Kind, cur.X, cur.Y)},
		{"Next", s.Next().Kind.String()},
		{"Board Fill", fmt.Sprintf("%d/%d", board.Filled(), board.Rows()*board.Cols())},
		{"Stack Height", fmt.Sprintf("%d", board.Height())},
	}
}

func (si *SessionInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 310), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := si.session

	switch s.State() {
	case game.StatePlaying:
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "PLAYING")
	case game.StateGameOver:
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER: "+s.EndReason().String())
	default:
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "READY")
	}

	cfg := s.Config()
	if cfg.GameTime > 0 {
		progress := float32(s.Remaining()) / float32(cfg.GameTime)
		imgui.ProgressBarV(progress, imgui.NewVec2(-1, 0), game.FormatTime(s.Remaining()))
	}

	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SessionTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Field")
		imgui.TableSetupColumn("Value")
		imgui.TableHeadersRow()

		for _, f := range sessionFields(s) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(f.name)
			imgui.TableNextColumn()
			imgui.Text(f.value)
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Clears") {
		stats := s.Stats()
		imgui.Text(fmt.Sprintf("Locks: %d", stats.Locks()))
		imgui.Text(fmt.Sprintf("Lines: %d", stats.Lines()))
		for lines := 1; lines <= 4; lines++ {
			imgui.BulletText(fmt.Sprintf("%d-line: %d", lines, stats.Clears(lines)))
		}
		if n := stats.CellsAboveTop(); n > 0 {
			imgui.BulletText(fmt.Sprintf("cells lost above top: %d", n))
		}
		imgui.TreePop()
	}

	imgui.Separator()

	if imgui.Button("Restart") {
		s.Start()
	}
	imgui.SameLine()
	if imgui.Button("Drop") {
		s.DropPiece()
	}

	imgui.End()
}
