package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logweave/internal/config"
)

func Test_AcquireRelease(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultConfig()
	worker := NewWorkerPool(cfg)

	for i := 0; i < cfg.Search.Workers; i++ {
		err := worker.Acquire(ctx)
		require.NoError(t, err)
	}

	done := make(chan bool)

	go func() {
		err := worker.Acquire(ctx)
		require.NoError(t, err)

		done <- true
	}()

	select {
	case <-done:
		t.Fatal("Should not have acquired extra worker slot immediately")
	case <-time.After(50 * time.Millisecond):
	}

	worker.Release()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Should have acquired worker slot after release")
	}

	for i := 0; i < cfg.Search.Workers; i++ {
		worker.Release()
	}
}

func Test_ConcurrentWorkers(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultConfig()
	worker := NewWorkerPool(cfg)

	var (
		activeWorkers int
		maxActive     int
		mu            sync.Mutex
	)

	workersStarted := make(chan struct{}, 10)
	workersCanFinish := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			err := worker.Acquire(ctx)
			require.NoError(t, err)

			defer worker.Release()

			mu.Lock()

			activeWorkers++
			if activeWorkers > maxActive {
				maxActive = activeWorkers
			}

			mu.Unlock()

			workersStarted <- struct{}{}

			<-workersCanFinish

			mu.Lock()

			activeWorkers--

			mu.Unlock()
		}()
	}

	for i := 0; i < cfg.Search.Workers; i++ {
		<-workersStarted
	}

	close(workersCanFinish)
	wg.Wait()

	assert.Equal(t, 0, activeWorkers)
	assert.LessOrEqual(t, maxActive, cfg.Search.Workers)
	assert.Greater(t, maxActive, 0)
}

func Test_AcquireContextCancelled(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultConfig()
	worker := NewWorkerPool(cfg)

	for i := 0; i < cfg.Search.Workers; i++ {
		err := worker.Acquire(ctx)
		require.NoError(t, err)
	}

	ctx, cancel := context.WithCancel(ctx)

	done := make(chan error, 1)

	go func() {
		done <- worker.Acquire(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.Error(t, err)
		assert.Equal(t, context.Canceled, err)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Should have received context cancellation error")
	}

	for i := 0; i < cfg.Search.Workers; i++ {
		worker.Release()
	}
}

func Test_Run(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Search.Workers = 2
	pool := NewWorkerPool(cfg)

	var (
		active    atomic.Int32
		maxActive atomic.Int32
		seen      = make([]bool, 10)
	)

	err := pool.Run(context.Background(), len(seen), func(ctx context.Context, i int) error {
		n := active.Add(1)
		defer active.Add(-1)

		for {
			m := maxActive.Load()
			if n <= m || maxActive.CompareAndSwap(m, n) {
				break
			}
		}

		time.Sleep(5 * time.Millisecond)
		seen[i] = true

		return nil
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, maxActive.Load(), int32(2))

	for i, ok := range seen {
		assert.True(t, ok, "task %d did not run", i)
	}
}

func Test_Run_FirstError(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Search.Workers = 1
	pool := NewWorkerPool(cfg)

	boom := errors.New("boom")

	var started atomic.Int32

	err := pool.Run(context.Background(), 5, func(ctx context.Context, i int) error {
		started.Add(1)

		if i == 1 {
			return boom
		}

		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Less(t, started.Load(), int32(5))
}

func Test_Run_Empty(t *testing.T) {
	pool := NewWorkerPool(config.DefaultConfig())

	err := pool.Run(context.Background(), 0, func(ctx context.Context, i int) error {
		t.Fatal("task must not run")
		return nil
	})

	assert.NoError(t, err)
}
