// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Map runs process for every item using at most workerCount goroutines and
// returns the results in input order. A failing item does not stop the others;
// its error is kept next to its position. Items not started before ctx is
// canceled report ctx.Err().
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) (R, error),
) ([]R, []error) {
	results := make([]R, len(items))
	errs := make([]error, len(items))
	if len(items) == 0 {
		return results, errs
	}
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	tasks := make(chan int, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				if err := ctx.Err(); err != nil {
					errs[idx] = err
					continue
				}
				results[idx], errs[idx] = process(ctx, items[idx])
			}
		}()
	}

	for idx := range items {
		select {
		case <-ctx.Done():
			errs[idx] = ctx.Err()
			continue
		case tasks <- idx:
		}
	}
	close(tasks)
	wg.Wait()

	return results, errs
}
