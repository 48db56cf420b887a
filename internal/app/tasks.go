package app

import (
	"context"

	"go.trai.ch/bakery/internal/core/domain"
)

// Names of the tasks of the table.
var (
	BuildTaskID = domain.NewTaskID("build")
	RunTaskID   = domain.NewTaskID("run")
)

// tasks returns the task table: build, and run depending on build.
func (a *App) tasks() []domain.Task {
	return []domain.Task{
		&buildTask{app: a},
		&runTask{app: a},
	}
}

type buildTask struct {
	app *App
}

func (t *buildTask) ID() domain.TaskID             { return BuildTaskID }
func (t *buildTask) Dependencies() []domain.TaskID { return nil }

func (t *buildTask) Execute(ctx context.Context, tc *domain.TaskContext) error {
	return t.app.builder.Build(ctx, tc.Project, t.app.factory.New(tc.Toolchain))
}

type runTask struct {
	app *App
}

func (t *runTask) ID() domain.TaskID             { return RunTaskID }
func (t *runTask) Dependencies() []domain.TaskID { return []domain.TaskID{BuildTaskID} }

// Execute runs the artifact in the project directory, attached to the app streams.
func (t *runTask) Execute(ctx context.Context, tc *domain.TaskContext) error {
	p := tc.Project
	return t.app.executor.Execute(ctx, p.ArtifactPath(), tc.Args, p.BasePath, t.app.stdout, t.app.stderr)
}
