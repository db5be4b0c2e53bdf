// Package reconcile runs the country refresh cycle.
//
// Both upstream datasets are fetched concurrently and must succeed before
// anything is written. Each country is then validated, priced in its first
// listed currency and upserted in its own transaction. A record that fails is
// reported in Result.Failed and the cycle carries on with the next one. Later
// duplicates of a name already seen in the same fetch are skipped.
//
// After the loop the refresh instant is stored under the last_refreshed_at
// metadata key and a summary event is published for the summary worker.
package reconcile
