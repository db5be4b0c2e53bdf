// Package summary turns refresh results into a PNG summary image.
//
// The reconciliation engine publishes an Event after each completed refresh.
// A single worker started with Run renders the event and uploads it to object
// storage, so a slow upload never holds up the refresh that produced it.
// Open serves the most recent image back to HTTP clients.
package summary
