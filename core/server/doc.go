// Package server holds the HTTP server configuration.
//
// While the start command handles the server lifecycle, this package defines
// the listen port, API key and graceful shutdown budget.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command to listen and shut down.
package server
