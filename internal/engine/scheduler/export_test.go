package scheduler

import "go.trai.ch/bakery/internal/core/domain"

// GetTaskStatusMap returns a copy of the internal task status map.
// This is exported for testing purposes only.
func (s *Scheduler) GetTaskStatusMap() map[domain.TaskID]TaskStatus {
	return s.statuses()
}
