package schedule

import "time"

// TaskId identifies a registered task. Zero is never issued, so it can be
// used as "no task".
type TaskId uint32

// Task is periodic work driven by a Scheduler. Tasks run on the goroutine
// that calls Scheduler.Once and never concurrently with each other.
type Task interface {
	Execute(frame *Frame)
}

// TaskFunc adapts a plain function to Task.
type TaskFunc func(frame *Frame)

// Execute calls f(frame).
func (f TaskFunc) Execute(frame *Frame) {
	f(frame)
}

// Frame is passed to every task fired during one Once call.
type Frame struct {
	// DeltaTime is the step, in seconds, that the clock advanced this frame.
	DeltaTime float64
	// Now is the scheduler clock after advancing.
	Now       time.Time
	Scheduler *Scheduler
}

type entry struct {
	id      TaskId
	period  time.Duration
	elapsed time.Duration
	task    Task
	stats   *taskStatsInternal
}
