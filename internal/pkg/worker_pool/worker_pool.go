package worker_pool

import (
	"context"
	"fmt"
	"sync/atomic"

	"gym_page_auditor/internal/pkg/metrics"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const DefaultWorkers = 8

// TaskFunc processes one item. index is the item's position in the input.
type TaskFunc[T, R any] func(ctx context.Context, index int, item T) (R, error)

// TaskResult holds the outcome of one item: its value, or the error it failed with.
type TaskResult[T, R any] struct {
	Item   T
	Result R
	Err    error
}

// WorkerPool runs a fixed number of workers over a shared cursor.
type WorkerPool struct {
	numWorkers int
	log        *log.Logger
}

// NewWorkerPool returns a pool with numWorkers workers, DefaultWorkers when numWorkers < 1.
func NewWorkerPool(numWorkers int, logger *log.Logger) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = DefaultWorkers
	}
	return &WorkerPool{numWorkers: numWorkers, log: logger}
}

func (wp *WorkerPool) Workers() int {
	return wp.numWorkers
}

// Map runs fn for every item and returns one TaskResult per item, at the item's own index.
//
// Each worker claims the next index from an atomic cursor and writes only that slot, so
// results need no lock. A failing or panicking item is recorded in its slot and never stops
// the other workers. Once ctx is done, unclaimed items are recorded with ctx.Err().
func Map[T, R any](ctx context.Context, wp *WorkerPool, items []T, fn TaskFunc[T, R]) []TaskResult[T, R] {
	results := make([]TaskResult[T, R], len(items))
	if len(items) == 0 {
		return results
	}

	workers := min(wp.numWorkers, len(items))
	var cursor atomic.Int64
	var g errgroup.Group

	for w := 1; w <= workers; w++ {
		g.Go(func() error {
			wp.log.Debugf("Worker %d started", w)
			processed := 0
			for {
				i := int(cursor.Add(1) - 1)
				if i >= len(items) {
					wp.log.Debugf("Worker %d exiting after %d items", w, processed)
					return nil
				}
				results[i] = runTask(ctx, wp, i, items[i], fn)
				processed++
			}
		})
	}

	// workers never return errors; failures live in results
	_ = g.Wait()
	return results
}

func runTask[T, R any](ctx context.Context, wp *WorkerPool, index int, item T, fn TaskFunc[T, R]) (res TaskResult[T, R]) {
	res.Item = item
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	metrics.AuditPoolInFlight.Inc()
	defer metrics.AuditPoolInFlight.Dec()

	defer func() {
		if rec := recover(); rec != nil {
			res.Err = fmt.Errorf("task %d panicked: %v", index, rec)
			wp.log.WithField("index", index).Errorf("Task panicked: %v", rec)
		}
	}()

	res.Result, res.Err = fn(ctx, index, item)
	if res.Err != nil {
		wp.log.WithError(res.Err).WithField("index", index).Warn("Task failed")
	}
	return res
}
