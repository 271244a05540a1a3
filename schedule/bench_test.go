package schedule_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/schedule"
)

func BenchmarkOnce(b *testing.B) {
	s := schedule.NewScheduler(time.Unix(0, 0))
	for range 8 {
		s.Every("noop", 30*time.Millisecond, schedule.TaskFunc(func(*schedule.Frame) {}))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Once(1.0 / 60.0)
	}
}

func BenchmarkPost(b *testing.B) {
	s := schedule.NewScheduler(time.Unix(0, 0))
	fn := func() {}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Post(fn)
		if i%64 == 63 {
			s.Once(0)
		}
	}
}

func BenchmarkEveryCancel(b *testing.B) {
	s := schedule.NewScheduler(time.Unix(0, 0))
	task := schedule.TaskFunc(func(*schedule.Frame) {})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := s.Every("churn", time.Second, task)
		s.Cancel(id)
	}
}
