package logmanager

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 100 goroutines create a logger for a shared context, then each destroys
// its own handle. The registry must end up empty with no lost or duplicate
// handles. Run with -race.
func TestConcurrentCreateDestroy(t *testing.T) {
	m := newTestManager(t, LevelError)
	defer func() { _ = m.Destroy() }()

	const goroutines = 100
	handles := make([]*Logger, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			l, err := m.CreateLogger(ThreadPool, "")
			assert.NoError(t, err)
			handles[i] = l
		}(i)
	}
	wg.Wait()

	require.Equal(t, goroutines, m.ActiveLoggers())

	// all handles must be distinct
	seen := map[*Logger]bool{}
	for _, l := range handles {
		require.NotNil(t, l)
		require.False(t, seen[l], "duplicate handle")
		seen[l] = true
	}

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, m.DestroyLogger(handles[i]))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, m.ActiveLoggers())
	for _, l := range handles {
		assert.True(t, l.Destroyed())
	}
}

// Level flips racing emission must be observed live without tearing.
func TestConcurrentLevelChangesDuringEmission(t *testing.T) {
	m, _ := newFileManager(t, LevelError)
	defer func() { _ = m.Destroy() }()

	l, err := m.CreateLogger(Scheduler, "")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = m.EnableLoggerLevel(Scheduler, LevelDebug)
			_ = m.DisableLoggerLevel(Scheduler, LevelDebug)
		}
	}()

	for i := 0; i < 200; i++ {
		l.Debug().Int("i", i).Msg("tick")
		_ = m.LoggerLevel(Scheduler)
	}
	<-done
}

// Creates racing Destroy either succeed before teardown (and are reclaimed
// by it) or fail fast; no record may survive or be destroyed twice.
func TestConcurrentCreateDuringDestroy(t *testing.T) {
	m := newTestManager(t, LevelError)

	const goroutines = 50
	handles := make([]*Logger, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	start := make(chan struct{})
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			<-start
			l, err := m.CreateLogger(Session, "")
			if err != nil {
				assert.True(t, IsManagerDestroyed(err))
				return
			}
			handles[i] = l
		}(i)
	}

	close(start)
	require.NoError(t, m.Destroy())
	wg.Wait()

	assert.Equal(t, 0, m.ActiveLoggers())
	for _, l := range handles {
		if l != nil {
			assert.True(t, l.Destroyed())
		}
	}
}
