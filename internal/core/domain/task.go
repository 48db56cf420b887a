package domain

import (
	"context"
	"unique"
)

// TaskID names a task. IDs are interned since the scheduler compares them repeatedly.
type TaskID struct {
	h unique.Handle[string]
}

// NewTaskID interns s as a TaskID.
func NewTaskID(s string) TaskID {
	return TaskID{h: unique.Make(s)}
}

// NewTaskIDs interns every element of s.
func NewTaskIDs(s ...string) []TaskID {
	res := make([]TaskID, len(s))
	for i, id := range s {
		res[i] = NewTaskID(id)
	}
	return res
}

// String returns the task name.
func (id TaskID) String() string {
	var zero unique.Handle[string]
	if id.h == zero {
		return ""
	}
	return id.h.Value()
}

// MarshalText implements encoding.TextMarshaler.
func (id TaskID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// TaskContext is the shared, read-only state every task executes against.
type TaskContext struct {
	Project   *Project
	Toolchain ToolchainSettings
	// Args are forwarded to the produced executable by the run task.
	Args []string
}

// Task is a named operation with static dependencies on other tasks.
type Task interface {
	// ID returns the stable name of the task.
	ID() TaskID
	// Dependencies returns the tasks that must run before this one, in declaration order.
	Dependencies() []TaskID
	// Execute performs the task.
	Execute(ctx context.Context, tc *TaskContext) error
}
