package schedule_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/plus3/blockfall/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type countingTask struct {
	ExecuteCount int
	LastNow      time.Time
}

func (c *countingTask) Execute(frame *schedule.Frame) {
	c.ExecuteCount++
	c.LastNow = frame.Now
}

func TestScheduler(t *testing.T) {
	t.Run("clock advances only through Once", func(t *testing.T) {
		sched := schedule.NewScheduler(epoch)
		assert.Equal(t, epoch, sched.Now())

		sched.Once(0.25)
		sched.Once(0.25)

		assert.Equal(t, epoch.Add(500*time.Millisecond), sched.Now())
	})

	t.Run("tasks fire once per period", func(t *testing.T) {
		sched := schedule.NewScheduler(epoch)
		fast := &countingTask{}
		slow := &countingTask{}
		sched.Every("fast", 100*time.Millisecond, fast)
		sched.Every("slow", time.Second, slow)

		for range 10 {
			sched.Once(0.1)
		}

		assert.Equal(t, 10, fast.ExecuteCount)
		assert.Equal(t, 1, slow.ExecuteCount)
		assert.Equal(t, epoch.Add(time.Second), slow.LastNow)
	})

	t.Run("late tasks catch up", func(t *testing.T) {
		sched := schedule.NewScheduler(epoch)
		task := &countingTask{}
		sched.Every("timer", time.Second, task)

		sched.Once(3.5)
		assert.Equal(t, 3, task.ExecuteCount)

		sched.Once(0.5)
		assert.Equal(t, 4, task.ExecuteCount)
	})

	t.Run("registration order", func(t *testing.T) {
		sched := schedule.NewScheduler(epoch)
		var order []string
		sched.Every("a", time.Millisecond, schedule.TaskFunc(func(*schedule.Frame) { order = append(order, "a") }))
		sched.Every("b", time.Millisecond, schedule.TaskFunc(func(*schedule.Frame) { order = append(order, "b") }))

		sched.Once(0.001)

		assert.Equal(t, []string{"a", "b"}, order)
	})

	t.Run("nil task panics", func(t *testing.T) {
		sched := schedule.NewScheduler(epoch)
		assert.Panics(t, func() { sched.Every("nil", time.Second, nil) })
		assert.Panics(t, func() { sched.Every("zero", 0, &countingTask{}) })
	})
}

func TestCancel(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		sched := schedule.NewScheduler(epoch)
		task := &countingTask{}
		id := sched.Every("task", 10*time.Millisecond, task)

		require.True(t, sched.Active(id))
		assert.True(t, sched.Cancel(id))
		assert.False(t, sched.Cancel(id))
		assert.False(t, sched.Cancel(0))
		assert.False(t, sched.Active(id))
		assert.Equal(t, 0, sched.Len())

		sched.Once(1)
		assert.Equal(t, 0, task.ExecuteCount)
		assert.Equal(t, int64(1), sched.GetStats().Cancelled)
	})

	t.Run("cancel from inside a task stops catch up", func(t *testing.T) {
		sched := schedule.NewScheduler(epoch)
		count := 0
		var id schedule.TaskId
		id = sched.Every("self", 10*time.Millisecond, schedule.TaskFunc(func(frame *schedule.Frame) {
			count++
			frame.Scheduler.Cancel(id)
		}))

		sched.Once(1)

		assert.Equal(t, 1, count)
		assert.Equal(t, 0, sched.Len())
	})

	t.Run("cancel another task in the same frame", func(t *testing.T) {
		sched := schedule.NewScheduler(epoch)
		victim := &countingTask{}
		var victimId schedule.TaskId
		sched.Every("killer", time.Second, schedule.TaskFunc(func(frame *schedule.Frame) {
			frame.Scheduler.Cancel(victimId)
		}))
		victimId = sched.Every("victim", time.Second, victim)

		sched.Once(1)

		assert.Equal(t, 0, victim.ExecuteCount)
		assert.Equal(t, 1, sched.Len())
	})

	t.Run("tasks registered during a frame wait for the next one", func(t *testing.T) {
		sched := schedule.NewScheduler(epoch)
		added := &countingTask{}
		registered := false
		sched.Every("spawner", 10*time.Millisecond, schedule.TaskFunc(func(frame *schedule.Frame) {
			if !registered {
				registered = true
				frame.Scheduler.Every("added", 10*time.Millisecond, added)
			}
		}))

		sched.Once(0.01)
		assert.Equal(t, 0, added.ExecuteCount)

		sched.Once(0.01)
		assert.Equal(t, 1, added.ExecuteCount)
	})
}

func TestPost(t *testing.T) {
	sched := schedule.NewScheduler(epoch)
	task := &countingTask{}
	sched.Every("task", 10*time.Millisecond, task)

	var seen []int
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sched.Post(func() {
				seen = append(seen, i)
				assert.Equal(t, 0, task.ExecuteCount, "posted events run before tasks")
			})
		}()
	}
	wg.Wait()

	assert.Empty(t, seen)
	sched.Once(0.01)
	assert.Len(t, seen, 8)
	assert.Equal(t, 1, task.ExecuteCount)

	sched.Once(0.01)
	assert.Len(t, seen, 8)
}

func TestRun(t *testing.T) {
	sched := schedule.NewScheduler(time.Now())
	task := &countingTask{}
	sched.Every("task", time.Millisecond, task)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool)
	go func() {
		sched.Run(ctx, time.Millisecond)
		done <- true
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}

	assert.Greater(t, task.ExecuteCount, 0)
}

func TestStats(t *testing.T) {
	sched := schedule.NewScheduler(epoch)
	sched.Every("sleepy", 10*time.Millisecond, schedule.TaskFunc(func(*schedule.Frame) {
		time.Sleep(time.Millisecond)
	}))
	idle := sched.Every("idle", time.Second, &countingTask{})

	for range 5 {
		sched.Once(0.01)
	}

	stats := sched.GetStats()
	assert.Equal(t, int64(5), stats.Frames)
	assert.Equal(t, 2, stats.TaskCount)
	assert.Equal(t, int64(5), stats.TotalExecutions)
	require.Len(t, stats.Tasks, 2)

	sleepy := stats.Tasks[0]
	assert.Equal(t, "sleepy", sleepy.Name)
	assert.Equal(t, int64(5), sleepy.ExecutionCount)
	assert.GreaterOrEqual(t, sleepy.MinDuration, time.Millisecond)
	assert.GreaterOrEqual(t, sleepy.MaxDuration, sleepy.MinDuration)
	assert.GreaterOrEqual(t, sleepy.AvgDuration, sleepy.MinDuration)
	assert.GreaterOrEqual(t, sleepy.TotalDuration, 5*time.Millisecond)

	assert.Equal(t, idle, stats.Tasks[1].Id)
	assert.Equal(t, int64(0), stats.Tasks[1].ExecutionCount)
	assert.Equal(t, time.Duration(0), stats.Tasks[1].MinDuration)
}
