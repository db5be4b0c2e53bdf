// Package config provides configuration management for the country currency service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, shutdown budget)
//   - Database: MySQL (or SQLite) connection details
//   - Storage: S3/MinIO credentials and the artifact bucket
//   - Log: Logging level and format
//   - Metrics: Prometheus endpoint toggle and path
//   - Sources: upstream country and exchange rate URLs and fetch timeout
//   - Refresh: reconciliation settings (top N entries in the summary)
//   - Summary: object name and queue size of the summary renderer
//
// Defaults live in `default` struct tags next to each field. Environment keys
// replace dots with underscores, e.g. SOURCES_TIMEOUT_SECONDS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
