package metrics

// Config holds configuration for the Prometheus endpoint.
type Config struct {
	// Enabled exposes the metrics route.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Path is the route the metrics are served on.
	Path string `mapstructure:"path" default:"/metrics"`
}
