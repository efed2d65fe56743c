package worker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsAllJobs(t *testing.T) {
	p := NewPool(4)

	var done atomic.Int64
	for i := 0; i < 100; i++ {
		require.NoError(t, p.Go(func() {
			done.Add(1)
		}))
	}
	p.Wait()

	assert.Equal(t, int64(100), done.Load())
	assert.Equal(t, 0, p.InFlight())
}

func TestPoolHonorsLimit(t *testing.T) {
	const limit = 3
	p := NewPool(limit)

	var running, peak atomic.Int64
	var mu sync.Mutex
	for i := 0; i < 20; i++ {
		require.NoError(t, p.Go(func() {
			n := running.Add(1)
			mu.Lock()
			if n > peak.Load() {
				peak.Store(n)
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
			running.Add(-1)
		}))
	}
	p.Wait()

	assert.LessOrEqual(t, peak.Load(), int64(limit))
	assert.Positive(t, peak.Load())
}

func TestPoolClosed(t *testing.T) {
	p := NewPool(1)
	require.NoError(t, p.Go(nil))
	p.Wait()

	assert.ErrorIs(t, p.Go(func() {}), ErrPoolClosed)
}

func TestPoolDefaultLimit(t *testing.T) {
	p := NewPool(0)
	require.NoError(t, p.Go(func() {}))
	p.Wait()
}
