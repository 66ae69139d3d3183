package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/carve/internal/adapters/watcher"
)

func TestDebouncer_CoalescesRapidEvents(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/proj/a.carve")
		d.Add("/proj/lib/b.carve")
		d.Add("/proj/a.carve")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		require.Len(t, receivedPaths, 2)
		assert.Contains(t, receivedPaths, "/proj/a.carve")
		assert.Contains(t, receivedPaths, "/proj/lib/b.carve")
	})
}

func TestDebouncer_AddRearmsTheWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			callCount++
			mu.Unlock()
		})

		d.Add("/proj/a.carve")
		time.Sleep(50 * time.Millisecond)
		d.Add("/proj/lib/b.carve")
		time.Sleep(50 * time.Millisecond)

		// 100ms after the first add, but only 50ms after the second: the
		// rearmed window has not expired yet.
		synctest.Wait()
		mu.Lock()
		count := callCount
		mu.Unlock()
		assert.Equal(t, 0, count)

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		count = callCount
		mu.Unlock()
		require.Equal(t, 1, count)
	})
}

func TestDebouncer_FlushFiresImmediately(t *testing.T) {
	var callCount int
	var receivedPaths []string

	d := watcher.NewDebouncer(time.Hour, func(paths []string) {
		callCount++
		receivedPaths = paths
	})

	d.Add("/proj/a.carve")
	d.Flush()

	require.Equal(t, 1, callCount)
	assert.Equal(t, []string{"/proj/a.carve"}, receivedPaths)
}

func TestDebouncer_FlushWithNothingPending(t *testing.T) {
	var callCount int

	d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
		callCount++
	})

	d.Flush()

	assert.Equal(t, 0, callCount)
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("/proj/a.carve")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Flush()
	})
}
