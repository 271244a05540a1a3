package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/kamstrup/intmap"
)

// Scheduler is a single-threaded event loop. It owns a clock that advances
// only through Once, a set of periodic tasks, and a queue of posted events.
// Only Post is safe to call from other goroutines; everything else belongs to
// the loop goroutine.
type Scheduler struct {
	now    time.Time
	nextId TaskId
	tasks  *intmap.Map[TaskId, *entry]
	order  []TaskId
	firing []TaskId

	mu     sync.Mutex
	posted []func()

	frames          int64
	totalExecutions int64
	cancelled       int64
}

// NewScheduler creates a scheduler whose clock starts at epoch.
func NewScheduler(epoch time.Time) *Scheduler {
	return &Scheduler{
		now:   epoch,
		tasks: intmap.New[TaskId, *entry](8),
	}
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Every registers task to run once per period of clock time. Tasks fire in
// registration order. A task registered while a frame is running first fires
// on a later frame.
func (s *Scheduler) Every(name string, period time.Duration, task Task) TaskId {
	if task == nil {
		panic("schedule: nil task " + name)
	}
	if period <= 0 {
		panic("schedule: non-positive period for task " + name)
	}

	s.nextId++
	e := &entry{
		id:     s.nextId,
		period: period,
		task:   task,
		stats: &taskStatsInternal{
			name:        name,
			period:      period,
			minDuration: time.Duration(1<<63 - 1),
		},
	}
	s.tasks.Put(e.id, e)
	s.order = append(s.order, e.id)
	return e.id
}

// Cancel removes a task. It reports whether the task was still registered;
// cancelling twice, or cancelling the zero id, is a no-op.
func (s *Scheduler) Cancel(id TaskId) bool {
	if _, ok := s.tasks.Get(id); !ok {
		return false
	}
	s.tasks.Del(id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.cancelled++
	return true
}

// Active reports whether id is registered.
func (s *Scheduler) Active(id TaskId) bool {
	_, ok := s.tasks.Get(id)
	return ok
}

// Len returns the number of registered tasks.
func (s *Scheduler) Len() int {
	return s.tasks.Len()
}

// Post queues fn to run on the loop goroutine at the start of the next frame.
func (s *Scheduler) Post(fn func()) {
	s.mu.Lock()
	s.posted = append(s.posted, fn)
	s.mu.Unlock()
}

func (s *Scheduler) drain() {
	s.mu.Lock()
	posted := s.posted
	s.posted = nil
	s.mu.Unlock()

	for _, fn := range posted {
		fn()
	}
}

// Once advances the clock by dt seconds, runs posted events, then fires every
// task whose period has elapsed. A task that fell behind by several periods
// fires once per period, all with the same frame.
func (s *Scheduler) Once(dt float64) {
	step := time.Duration(dt * float64(time.Second))
	s.now = s.now.Add(step)
	s.frames++

	s.drain()

	frame := &Frame{
		DeltaTime: dt,
		Now:       s.now,
		Scheduler: s,
	}

	s.firing = append(s.firing[:0], s.order...)
	for _, id := range s.firing {
		e, ok := s.tasks.Get(id)
		if !ok {
			continue
		}

		e.elapsed += step
		for e.elapsed >= e.period {
			e.elapsed -= e.period
			s.execute(e, frame)

			if !s.Active(id) {
				break
			}
		}
	}
}

func (s *Scheduler) execute(e *entry, frame *Frame) {
	start := time.Now()
	e.task.Execute(frame)
	duration := time.Since(start)

	stats := e.stats
	stats.executionCount++
	stats.lastDuration = duration
	stats.totalDuration += duration

	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}

	s.totalExecutions++
}

// Run calls Once on every tick of a wall-clock ticker until ctx is done. The
// step passed to Once is the real time between ticks.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}
