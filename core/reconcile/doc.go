// Package reconcile provides the generic building blocks of a two-source
// reconciliation cycle:
//
//   - LoadBoth: fetches two independent datasets concurrently (errgroup) and
//     fails fast when either source fails, before anything is written.
//   - Apply: walks the joined items in order, applies each one against the
//     store and tallies inserted/updated/skipped outcomes. Per-item failures are
//     collected in Tally.Failed and the batch continues.
//   - Guard: a singleflight wrapper ensuring at most one cycle executes at a
//     time; concurrent callers share the in-flight result.
//
// Items are identified by a key compared case-insensitively (FoldKey); later
// items repeating an earlier key are skipped.
//
// # Usage Example
//
//	countries, rates, err := reconcile.LoadBoth(ctx, fetchCountries, fetchRates)
//	if err != nil {
//	    return err // nothing written
//	}
//	tally, err := reconcile.Apply(ctx, countries, nameOf, upsert, logFailure)
//
// Feature packages (see feature/countries/reconcile) supply the loaders and the
// apply function for their own model.
package reconcile
