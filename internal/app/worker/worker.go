package worker

import (
	"context"
	"sync"

	"logweave/internal/config"
)

// Pool bounds how many log files are processed at once
type Pool interface {
	Acquire(ctx context.Context) error
	Release()
	Run(ctx context.Context, n int, task func(ctx context.Context, i int) error) error
}

// pool implements the Pool interface
type pool struct {
	sem chan struct{}
}

// NewWorkerPool creates a new worker pool sized by the search worker setting
func NewWorkerPool(cfg *config.Config) Pool {
	return &pool{
		sem: make(chan struct{}, cfg.Search.Workers),
	}
}

// Acquire acquires a worker slot, blocking if all workers are busy or returning error if context is cancelled
func (w *pool) Acquire(ctx context.Context) error {
	select {
	case w.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release releases a worker slot
func (w *pool) Release() {
	<-w.sem
}

// Run calls task for every index in [0, n) on the pool and waits for all of
// them. The first error cancels the tasks not yet started and is returned.
func (w *pool) Run(ctx context.Context, n int, task func(ctx context.Context, i int) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg    sync.WaitGroup
		once  sync.Once
		first error
	)

	fail := func(err error) {
		once.Do(func() {
			first = err
			cancel()
		})
	}

	for i := range n {
		if err := w.Acquire(ctx); err != nil {
			fail(err)
			break
		}

		if err := ctx.Err(); err != nil {
			w.Release()
			fail(err)

			break
		}

		wg.Add(1)

		go func() {
			defer wg.Done()
			defer w.Release()

			if err := task(ctx, i); err != nil {
				fail(err)
			}
		}()
	}

	wg.Wait()

	return first
}
