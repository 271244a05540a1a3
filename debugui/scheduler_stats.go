package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/schedule"
)

// frameHistory is a ring of recent frame times in milliseconds.
type frameHistory struct {
	samples []float32
	index   int
	filled  int
}

func newFrameHistory(size int) *frameHistory {
	return &frameHistory{samples: make([]float32, size)}
}

func (h *frameHistory) push(ms float32) {
	h.samples[h.index] = ms
	h.index = (h.index + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

func (h *frameHistory) average() float32 {
	if h.filled == 0 {
		return 0
	}
	var total float32
	for _, ms := range h.samples {
		total += ms
	}
	return total / float32(h.filled)
}

// SchedulerStats shows frame timing and per-task execution counts.
type SchedulerStats struct {
	sched   *schedule.Scheduler
	timer   *FrameTimer
	history *frameHistory
}

// NewSchedulerStats creates the window, keeping historyFrames frame times
// for the graph.
func NewSchedulerStats(sched *schedule.Scheduler, historyFrames int) *SchedulerStats {
	return &SchedulerStats{
		sched:   sched,
		timer:   NewFrameTimer(),
		history: newFrameHistory(historyFrames),
	}
}

func (ss *SchedulerStats) Render() {
	ss.history.push(ss.timer.GetDeltaTime() * 1000.0)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 330), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 300), imgui.CondOnce)

	if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ss.sched.GetStats()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Tasks: %d", stats.TaskCount))
	imgui.Text(fmt.Sprintf("Executions: %d", stats.TotalExecutions))
	imgui.Text(fmt.Sprintf("Cancelled: %d", stats.Cancelled))

	avg := ss.history.average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ss.history.samples[0], int32(len(ss.history.samples)))

	if imgui.TreeNodeStr("Task Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("TaskStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Task")
			imgui.TableSetupColumn("Period")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, task := range stats.Tasks {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(task.Name)
				imgui.TableNextColumn()
				imgui.Text(task.Period.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", task.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(task.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(task.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall time between calls.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
