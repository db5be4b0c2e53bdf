// Package metrics exposes Prometheus collectors for the refresh cycle and the
// summary renderer, served from a private registry through a Fiber handler.
package metrics
