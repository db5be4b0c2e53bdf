package reconcile

import (
	"context"
)

// ApplyFunc writes one item and reports whether it was inserted or updated.
type ApplyFunc[T any] func(ctx context.Context, item T) (Outcome, error)

// KeyFunc returns the identity of an item. Keys are compared case-insensitively.
type KeyFunc[T any] func(item T) string

// ErrorFunc observes a per-item failure.
type ErrorFunc func(key string, err error)

// Apply runs apply for every item in order and tallies the outcomes.
//
// Items sharing a key with an earlier item are skipped, so Inserted+Updated never
// exceeds the number of distinct keys. A failing item is recorded in
// Tally.Failed and the loop continues. Apply stops early only when ctx is done;
// the returned error is then ctx.Err() and the tally covers the items seen so far.
func Apply[T any](ctx context.Context, items []T, key KeyFunc[T], apply ApplyFunc[T], onError ErrorFunc) (Tally, error) {
	tally := Tally{Failed: []ItemError{}}
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return tally, err
		}

		k := key(item)
		folded := FoldKey(k)
		if _, dup := seen[folded]; dup {
			tally.record(OutcomeSkipped)
			continue
		}
		seen[folded] = struct{}{}

		outcome, err := apply(ctx, item)
		if err != nil {
			tally.Failed = append(tally.Failed, ItemError{Key: k, Message: err.Error()})
			if onError != nil {
				onError(k, err)
			}
			continue
		}
		tally.record(outcome)
	}

	return tally, nil
}
