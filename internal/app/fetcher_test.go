package app

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func testLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestFetchAllPreservesInputOrder(t *testing.T) {
	fetcher := NewBoundedFetcher[int](4, testLog())

	tasks := make([]FetchTask[int], 20)
	for i := range tasks {
		i := i
		tasks[i] = FetchTask[int]{
			Division: "НТП1",
			Report:   "aht",
			Run: func(ctx context.Context) (int, error) {
				// Random delays shuffle completion order; output order
				// must still match input order.
				time.Sleep(time.Duration(rand.Intn(20)) * time.Millisecond)
				return i, nil
			},
		}
	}

	results := fetcher.FetchAll(context.Background(), tasks)

	require.Len(t, results, len(tasks))
	for i, res := range results {
		require.NoError(t, res.Err)
		require.Equal(t, i, res.Value)
	}
}

func TestFetchAllRespectsConcurrencyLimit(t *testing.T) {
	const limit = 3

	var active, maxActive atomic.Int32
	fetcher := NewBoundedFetcher[struct{}](limit, testLog())

	tasks := make([]FetchTask[struct{}], 20)
	for i := range tasks {
		tasks[i] = FetchTask[struct{}]{
			Run: func(ctx context.Context) (struct{}, error) {
				cur := active.Add(1)
				for {
					max := maxActive.Load()
					if cur <= max || maxActive.CompareAndSwap(max, cur) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				active.Add(-1)
				return struct{}{}, nil
			},
		}
	}

	fetcher.FetchAll(context.Background(), tasks)

	require.LessOrEqual(t, maxActive.Load(), int32(limit))
	require.Positive(t, maxActive.Load())
}

func TestFetchAllIsolatesFailures(t *testing.T) {
	fetcher := NewBoundedFetcher[string](2, testLog())
	errBoom := errors.New("api unreachable")

	tasks := make([]FetchTask[string], 6)
	for i := range tasks {
		i := i
		tasks[i] = FetchTask[string]{
			Division: "НЦК",
			Report:   "csi",
			Run: func(ctx context.Context) (string, error) {
				if i%2 == 0 {
					return "", errBoom
				}
				return "ok", nil
			},
		}
	}

	results := fetcher.FetchAll(context.Background(), tasks)

	require.Len(t, results, len(tasks))
	for i, res := range results {
		if i%2 == 0 {
			require.True(t, res.Failed())
			require.ErrorIs(t, res.Err, errBoom)
			require.Empty(t, res.Value)
		} else {
			require.False(t, res.Failed())
			require.Equal(t, "ok", res.Value)
		}
	}
}

func TestFetchAllLogsCancelledTasks(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	fetcher := NewBoundedFetcher[int](1, logrus.NewEntry(logger))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tasks := []FetchTask[int]{{
		Division: "НТП2",
		Report:   "flr",
		Run: func(ctx context.Context) (int, error) {
			t.Error("task must not run once the cycle is cancelled")
			return 0, nil
		},
	}}

	results := fetcher.FetchAll(ctx, tasks)

	require.Len(t, results, 1)
	require.True(t, results[0].Failed())
	require.ErrorIs(t, results[0].Err, context.Canceled)

	// A task that never got a semaphore slot still leaves a logged
	// failure carrying its descriptor.
	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	require.Equal(t, logrus.ErrorLevel, entry.Level)
	require.Equal(t, "НТП2", entry.Data["division"])
	require.Equal(t, "flr", entry.Data["report"])
}

func TestFetchAllDefaultsLimit(t *testing.T) {
	fetcher := NewBoundedFetcher[int](0, testLog())
	require.Equal(t, int64(10), fetcher.limit)
}
