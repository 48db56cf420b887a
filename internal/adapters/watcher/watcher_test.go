package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bakery/internal/adapters/watcher"
	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports"
	"go.trai.ch/bakery/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// nextEvent waits for the first event accepted by match.
func nextEvent(t *testing.T, events <-chan ports.WatchEvent, match func(ports.WatchEvent) bool) ports.WatchEvent {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event stream closed")
			if match(ev) {
				return ev
			}
		case <-timeout:
			t.Fatal("timed out waiting for a watch event")
			return ports.WatchEvent{}
		}
	}
}

func startWatcher(t *testing.T, roots ...string) <-chan ports.WatchEvent {
	t.Helper()
	ctrl := gomock.NewController(t)

	w := watcher.NewWatcher(mocks.NewMockLogger(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})

	require.NoError(t, w.Start(ctx, roots...))

	events := make(chan ports.WatchEvent)
	go func() {
		defer close(events)
		for ev := range w.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}

func TestWatcher_ReportsNestedWrites(t *testing.T) {
	app := t.TempDir()
	lib := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(lib, "src"), domain.DirPerm))

	events := startWatcher(t, app, lib)

	source := filepath.Join(lib, "src", "lib.c")
	require.NoError(t, os.WriteFile(source, []byte("int lib;\n"), domain.FilePerm))

	ev := nextEvent(t, events, func(ev ports.WatchEvent) bool { return ev.Path == source })
	assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, ev.Operation)
}

func TestWatcher_WatchesCreatedDirectories(t *testing.T) {
	root := t.TempDir()
	events := startWatcher(t, root)

	dir := filepath.Join(root, "include")
	require.NoError(t, os.Mkdir(dir, domain.DirPerm))
	nextEvent(t, events, func(ev ports.WatchEvent) bool { return ev.Path == dir })

	header := filepath.Join(dir, "api.h")
	// The directory is added asynchronously, so keep touching the file until it shows up.
	deadline := time.Now().Add(5 * time.Second)
	for {
		require.NoError(t, os.WriteFile(header, []byte("#pragma once\n"), domain.FilePerm))
		select {
		case ev := <-events:
			if ev.Path == header {
				return
			}
		case <-time.After(100 * time.Millisecond):
		}
		if time.Now().After(deadline) {
			t.Fatal("no event for a file in a created directory")
		}
	}
}

func TestWatcher_SkipsBuildOutput(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".bakery", "build"), domain.DirPerm))

	events := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, ".bakery", "build", "main.o"), nil, domain.FilePerm))
	marker := filepath.Join(root, "marker.c")
	require.NoError(t, os.WriteFile(marker, nil, domain.FilePerm))

	// The first reported event is the marker: nothing below .bakery is seen.
	ev := nextEvent(t, events, func(ports.WatchEvent) bool { return true })
	assert.Equal(t, marker, ev.Path)
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := watcher.NewWatcher(mocks.NewMockLogger(ctrl))

	assert.NoError(t, w.Stop())
}

func TestWatcher_StartTwiceAddsRoots(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := watcher.NewWatcher(mocks.NewMockLogger(ctrl))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})

	first, second := t.TempDir(), t.TempDir()
	require.NoError(t, w.Start(ctx, first))
	require.NoError(t, w.Start(ctx, second))

	source := filepath.Join(second, "main.c")
	require.NoError(t, os.WriteFile(source, nil, domain.FilePerm))

	for ev := range w.Events() {
		if ev.Path == source {
			return
		}
	}
	t.Fatal("no event from the second root")
}
