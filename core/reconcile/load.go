package reconcile

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Loader fetches one source dataset.
type Loader[T any] func(ctx context.Context) (T, error)

// LoadBoth runs both loaders concurrently and waits for both.
// The first failure cancels the other loader's context and is returned.
func LoadBoth[A, B any](ctx context.Context, loadA Loader[A], loadB Loader[B]) (A, B, error) {
	var (
		a A
		b B
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		a, err = loadA(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		b, err = loadB(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		var zeroA A
		var zeroB B
		return zeroA, zeroB, err
	}
	return a, b, nil
}
