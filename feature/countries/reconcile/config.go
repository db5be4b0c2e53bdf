package reconcile

// Config holds reconciliation settings.
type Config struct {
	// TopN is the number of countries ranked in the summary event.
	TopN int `mapstructure:"top_n" default:"5"`
}
