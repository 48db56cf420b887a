// Package app implements the application layer for bakery.
package app

import (
	"context"
	"io"
	"os"
	"time"

	"go.trai.ch/bakery/internal/adapters/watcher" //nolint:depguard // Debouncer is shared with the watcher adapter
	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports"
	"go.trai.ch/bakery/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.ProjectLoader
	builder  ports.ProjectBuilder
	locator  ports.ToolchainLocator
	factory  ports.ToolchainFactory
	executor ports.Executor
	watcher  ports.Watcher
	logger   ports.Logger

	stdout         io.Writer
	stderr         io.Writer
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	builder ports.ProjectBuilder,
	locator ports.ToolchainLocator,
	factory ports.ToolchainFactory,
	executor ports.Executor,
	watch ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		loader:         loader,
		builder:        builder,
		locator:        locator,
		factory:        factory,
		executor:       executor,
		watcher:        watch,
		logger:         log,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithOutput sets the streams the graph is printed to and the executable is attached to.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithDebounceWindow sets how long watch mode waits for changes to settle.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounceWindow = window
	return a
}

// Build builds the project rooted at dir and everything it depends on.
func (a *App) Build(ctx context.Context, dir string) error {
	tc, err := a.prepare(dir)
	if err != nil {
		return err
	}
	return a.schedule(ctx, BuildTaskID, tc)
}

// Run builds the project rooted at dir and executes its artifact with args.
func (a *App) Run(ctx context.Context, dir string, args []string) error {
	tc, err := a.prepare(dir)
	if err != nil {
		return err
	}
	if tc.Project.Distribution != domain.Executable {
		return zerr.With(zerr.With(domain.ErrCannotRunNonExecutable, "project", tc.Project.Name),
			"distribution", tc.Project.Distribution.String())
	}
	tc.Args = args
	return a.schedule(ctx, RunTaskID, tc)
}

// prepare opens the project tree and locates the toolchain.
func (a *App) prepare(dir string) (*domain.TaskContext, error) {
	project, err := a.loader.Open(dir)
	if err != nil {
		return nil, err
	}

	settings, err := a.locator.Locate()
	if err != nil {
		return nil, err
	}

	return &domain.TaskContext{Project: project, Toolchain: settings}, nil
}

func (a *App) schedule(ctx context.Context, root domain.TaskID, tc *domain.TaskContext) error {
	sched := scheduler.NewScheduler(a.tasks()...)
	return sched.Run(ctx, root, tc)
}
