package reconcile

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Guard lets at most one run of a routine execute at a time.
// Callers arriving while a run is in flight wait for it and share its result.
type Guard[T any] struct {
	key string
	sf  singleflight.Group
}

// NewGuard creates a guard; key only labels the flight.
func NewGuard[T any](key string) *Guard[T] {
	return &Guard[T]{key: key}
}

// Do executes fn unless a run is already in flight, in which case it joins it.
// shared is true when the result was delivered to more than one caller.
// A waiting caller whose ctx ends stops waiting; the in-flight run continues.
func (g *Guard[T]) Do(ctx context.Context, fn func() (T, error)) (result T, shared bool, err error) {
	ch := g.sf.DoChan(g.key, func() (interface{}, error) {
		return fn()
	})

	select {
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			var zero T
			return zero, res.Shared, res.Err
		}
		return res.Val.(T), res.Shared, nil
	}
}
