package app_test

import (
	"context"
	"iter"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports"
	"go.uber.org/mock/gomock"
)

func TestApp_Watch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.app.WithDebounceWindow(100 * time.Millisecond)
		project := newTree()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var builds atomic.Int32
		f.loader.EXPECT().Open("/work/app").Return(project, nil).Times(3)
		f.locator.EXPECT().Locate().Return(settings, nil).Times(2)
		f.factory.EXPECT().New(settings).Return(f.toolchain).Times(2)
		f.builder.EXPECT().Build(gomock.Any(), project, f.toolchain).
			DoAndReturn(func(context.Context, *domain.Project, ports.Toolchain) error {
				if builds.Add(1) == 1 {
					return domain.ErrLinkFailed
				}
				return nil
			}).Times(2)

		f.logger.EXPECT().Error(gomock.Any()).Times(1)
		f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

		var events iter.Seq[ports.WatchEvent] = func(yield func(ports.WatchEvent) bool) {
			for _, path := range []string{"/work/app/main.c", "/work/lib/lib.c", "/work/app/main.c"} {
				if !yield(ports.WatchEvent{Path: path, Operation: ports.OpWrite}) {
					return
				}
			}
			<-ctx.Done()
		}
		f.watcher.EXPECT().Start(gomock.Any(), "/work/app", "/work/lib").Return(nil)
		f.watcher.EXPECT().Events().Return(events)
		f.watcher.EXPECT().Stop().Return(nil)

		done := make(chan error, 1)
		go func() { done <- f.app.Watch(ctx, "/work/app") }()

		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, int32(2), builds.Load(), "one initial build and one rebuild for the burst")

		cancel()
		require.NoError(t, <-done)
	})
}

func TestApp_Watch_StartError(t *testing.T) {
	f := newFixture(t)
	project := newTree()

	f.loader.EXPECT().Open(".").Return(project, nil).Times(2)
	f.locator.EXPECT().Locate().Return(settings, nil)
	f.factory.EXPECT().New(settings).Return(f.toolchain)
	f.builder.EXPECT().Build(gomock.Any(), project, f.toolchain).Return(nil)
	f.watcher.EXPECT().Start(gomock.Any(), "/work/app", "/work/lib").Return(domain.ErrWatchFailed)

	err := f.app.Watch(context.Background(), ".")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWatchFailed.Error())
}
