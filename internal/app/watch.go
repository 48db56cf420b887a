package app

import (
	"context"
	"strconv"
	"sync"

	"go.trai.ch/bakery/internal/adapters/watcher" //nolint:depguard // Debouncer is shared with the watcher adapter
)

// Watch builds the project rooted at dir, then rebuilds it whenever files of the tree
// change, until ctx is done.
//
// Build failures are logged and do not stop watching. The directories watched are those
// of the tree at start.
func (a *App) Watch(ctx context.Context, dir string) error {
	project, err := a.loader.Open(dir)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	rebuild := func() {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		if err := a.Build(ctx, dir); err != nil {
			a.logger.Error(err)
		}
	}

	rebuild()

	roots := make([]string, 0, 1)
	seen := make(map[string]bool)
	for p := range project.Walk() {
		if !seen[p.BasePath] {
			seen[p.BasePath] = true
			roots = append(roots, p.BasePath)
		}
	}

	if err := a.watcher.Start(ctx, roots...); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	a.logger.Info("Watching " + strconv.Itoa(len(roots)) + " project directories for changes")

	debouncer := watcher.NewDebouncer(a.debounceWindow, func(paths []string) {
		a.logger.Info(strconv.Itoa(len(paths)) + " files changed, rebuilding")
		rebuild()
	})

	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}

	return nil
}
