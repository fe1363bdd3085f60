// Package workerpool fans work items out to a bounded number of goroutines.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every item using at most workers goroutines and returns the
// results in input order. The first error cancels the remaining work and is
// returned; a done ctx stops scheduling new items.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]R, len(items))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		i, item := i, item
		eg.Go(func() error {
			r, err := fn(gctx, item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
