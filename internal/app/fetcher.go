package app

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

// FetchTask describes one unit of work in a sync cycle: a (division,
// report) pair and the operation producing its payload. Tasks are built
// per cycle and discarded after aggregation.
type FetchTask[T any] struct {
	Division string
	Report   string
	Run      func(ctx context.Context) (T, error)
}

// FetchResult pairs a task with its outcome. A failed task carries its
// error and the zero value; an empty payload is not a failure and is left
// for the aggregator to interpret.
type FetchResult[T any] struct {
	Task  FetchTask[T]
	Value T
	Err   error
}

// Failed reports whether the task raised a hard failure, as opposed to
// returning an empty payload.
func (r FetchResult[T]) Failed() bool {
	return r.Err != nil
}

// BoundedFetcher runs independent fetch tasks concurrently with a weighted
// semaphore capping how many execute at once. Failures are isolated per
// task: a failed task is logged and recorded on its result, and never
// aborts its siblings or the cycle.
type BoundedFetcher[T any] struct {
	limit int64
	log   *logrus.Entry
}

// NewBoundedFetcher returns a fetcher admitting at most limit tasks at a
// time. A limit below 1 falls back to the default of 10.
func NewBoundedFetcher[T any](limit int, log *logrus.Entry) *BoundedFetcher[T] {
	if limit < 1 {
		limit = 10
	}
	return &BoundedFetcher[T]{limit: int64(limit), log: log}
}

// FetchAll runs every task and returns the results positionally aligned
// with tasks, regardless of completion order, so callers can zip tasks
// with results by index. It blocks until all tasks have finished.
func (f *BoundedFetcher[T]) FetchAll(ctx context.Context, tasks []FetchTask[T]) []FetchResult[T] {
	sem := semaphore.NewWeighted(f.limit)
	results := make([]FetchResult[T], len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task FetchTask[T]) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				f.log.WithFields(logrus.Fields{
					"division": task.Division,
					"report":   task.Report,
				}).Errorf("Error executing fetch task %d: %v", i, err)
				results[i] = FetchResult[T]{Task: task, Err: err}
				return
			}
			defer sem.Release(1)

			value, err := task.Run(ctx)
			if err != nil {
				f.log.WithFields(logrus.Fields{
					"division": task.Division,
					"report":   task.Report,
				}).Errorf("Error executing fetch task %d: %v", i, err)
			}
			results[i] = FetchResult[T]{Task: task, Value: value, Err: err}
		}(i, task)
	}
	wg.Wait()

	return results
}
