// Package workerpool fans work out over a bounded number of goroutines.
package workerpool

import (
	"context"
	"sync"
)

// Map calls fn for every item on at most workers goroutines and returns the
// results in item order. The first error cancels the remaining calls and is
// returned; a canceled ctx returns ctx.Err().
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		results  = make([]R, len(items))
		indexes  = make(chan int)
		firstErr error
		once     sync.Once
		wg       sync.WaitGroup
	)
	for range min(workers, len(items)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if ctx.Err() != nil {
					continue
				}
				r, err := fn(ctx, items[i])
				if err != nil {
					once.Do(func() {
						firstErr = err
						cancel()
					})
					continue
				}
				results[i] = r
			}
		}()
	}

feed:
	for i := range items {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
