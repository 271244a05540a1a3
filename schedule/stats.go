package schedule

import "time"

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	Frames          int64
	TaskCount       int
	TotalExecutions int64
	Cancelled       int64
	Tasks           []TaskStats
}

// TaskStats provides execution statistics for a single registered task.
type TaskStats struct {
	Id             TaskId
	Name           string
	Period         time.Duration
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type taskStatsInternal struct {
	name           string
	period         time.Duration
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// GetStats returns statistics for the tasks currently registered, in firing
// order. Totals include tasks that have since been cancelled.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		Frames:          s.frames,
		TaskCount:       len(s.order),
		TotalExecutions: s.totalExecutions,
		Cancelled:       s.cancelled,
		Tasks:           make([]TaskStats, 0, len(s.order)),
	}

	for _, id := range s.order {
		e, ok := s.tasks.Get(id)
		if !ok {
			continue
		}
		internal := e.stats

		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Tasks = append(stats.Tasks, TaskStats{
			Id:             id,
			Name:           internal.name,
			Period:         internal.period,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		})
	}

	return stats
}
