// Package scheduler runs named tasks in dependency order.
package scheduler

import (
	"context"
	"maps"
	"sync"

	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/zerr"
)

// TaskStatus represents the status of a task.
type TaskStatus string

const (
	// StatusPending indicates the task is waiting to be executed.
	StatusPending TaskStatus = "Pending"
	// StatusRunning indicates the task is currently executing.
	StatusRunning TaskStatus = "Running"
	// StatusCompleted indicates the task has finished successfully.
	StatusCompleted TaskStatus = "Completed"
	// StatusFailed indicates the task execution failed.
	StatusFailed TaskStatus = "Failed"
)

// Scheduler executes the tasks of a table.
type Scheduler struct {
	tasks map[domain.TaskID]domain.Task

	mu         sync.RWMutex
	taskStatus map[domain.TaskID]TaskStatus
}

// NewScheduler creates a new Scheduler over tasks. A later task replaces an earlier one
// with the same ID.
func NewScheduler(tasks ...domain.Task) *Scheduler {
	s := &Scheduler{
		tasks:      make(map[domain.TaskID]domain.Task, len(tasks)),
		taskStatus: make(map[domain.TaskID]TaskStatus, len(tasks)),
	}
	for _, task := range tasks {
		s.tasks[task.ID()] = task
		s.taskStatus[task.ID()] = StatusPending
	}
	return s
}

// Order returns the execution order of root and everything it depends on.
//
// The tree of declared dependencies is walked depth first with the last declared
// dependency explored first. Reading the visit record backwards and keeping the first
// occurrence of every ID puts each task after all of its transitive dependencies, even
// when a task is reachable along several paths. Cycles are not detected and make Order
// loop forever.
func (s *Scheduler) Order(root domain.TaskID) ([]domain.TaskID, error) {
	work := []domain.TaskID{root}
	var record []domain.TaskID

	for len(work) > 0 {
		id := work[len(work)-1]
		work = work[:len(work)-1]

		task, ok := s.tasks[id]
		if !ok {
			return nil, zerr.With(domain.ErrTaskNotFound, "task", id.String())
		}

		record = append(record, id)
		work = append(work, task.Dependencies()...)
	}

	seen := make(map[domain.TaskID]struct{}, len(record))
	order := make([]domain.TaskID, 0, len(record))
	for i := len(record) - 1; i >= 0; i-- {
		id := record[i]
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		order = append(order, id)
	}

	return order, nil
}

// Run executes root and its dependencies sequentially in Order. The first failing task
// stops the run.
func (s *Scheduler) Run(ctx context.Context, root domain.TaskID, tc *domain.TaskContext) error {
	order, err := s.Order(root)
	if err != nil {
		return err
	}

	for _, id := range order {
		if err := ctx.Err(); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrTaskFailed.Error()), "task", id.String())
		}

		s.updateStatus(id, StatusRunning)
		if err := s.tasks[id].Execute(ctx, tc); err != nil {
			s.updateStatus(id, StatusFailed)
			return zerr.With(zerr.Wrap(err, domain.ErrTaskFailed.Error()), "task", id.String())
		}
		s.updateStatus(id, StatusCompleted)
	}

	return nil
}

// Status returns the status of the task id.
func (s *Scheduler) Status(id domain.TaskID) TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taskStatus[id]
}

func (s *Scheduler) updateStatus(id domain.TaskID, status TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskStatus[id] = status
}

func (s *Scheduler) statuses() map[domain.TaskID]TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.taskStatus)
}
