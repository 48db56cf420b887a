package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bakery/internal/adapters/watcher"
)

// recorder collects debouncer callbacks.
type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) callback(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func TestDebouncer_Add_Coalesces(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/app/src/b.c")
		d.Add("/app/src/a.c")
		d.Add("/app/src/b.c")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		calls := rec.snapshot()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/app/src/a.c", "/app/src/b.c"}, calls[0])
	})
}

func TestDebouncer_Add_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/app/src/a.c")
		time.Sleep(50 * time.Millisecond)
		d.Add("/app/src/b.c")
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.snapshot(), "the second add restarts the window")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		require.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_Add_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/app/src/a.c")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Add("/app/include/a.h")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/app/src/a.c"}, {"/app/include/a.h"}}, rec.snapshot())
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/app/src/a.c")
		d.Flush()

		require.Equal(t, [][]string{{"/app/src/a.c"}}, rec.snapshot())

		// The stopped timer does not fire a second time.
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_Flush_Empty(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

	d.Flush()

	assert.Empty(t, rec.snapshot())
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)

		require.NotPanics(t, func() {
			d.Add("/app/src/a.c")
			time.Sleep(20 * time.Millisecond)
			synctest.Wait()
			d.Flush()
		})
	})
}
