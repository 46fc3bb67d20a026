package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assemble/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/project/assemble.yaml")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/assemble.yaml")
		d.Add("/project/.assemble.yaml.swp")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/project/.assemble.yaml.swp", "/project/assemble.yaml"}, calls[0])
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var count int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) { count++ })

		d.Add("a")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Add("b")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 2, count)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	var got []string
	d := watcher.NewDebouncer(time.Hour, func(paths []string) { got = paths })

	d.Add("b")
	d.Add("a")
	d.Flush()

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var called bool
		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) { called = true })

		d.Add("a")
		d.Stop()

		time.Sleep(200 * time.Millisecond)
		synctest.Wait()

		assert.False(t, called)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	d := watcher.NewDebouncer(0, nil)
	require.NotPanics(t, func() {
		d.Add("a")
		d.Flush()
	})
}

func TestDebouncer_ConcurrentAdd(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]bool{}
	d := watcher.NewDebouncer(time.Hour, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		for _, p := range paths {
			seen[p] = true
		}
	})

	var wg sync.WaitGroup
	for _, p := range []string{"a", "b", "c", "a"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Add(p)
		}()
	}
	wg.Wait()
	d.Flush()

	assert.Len(t, seen, 3)
}
