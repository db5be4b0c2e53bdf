package sources

import "time"

// Config holds the upstream endpoints used by a refresh.
type Config struct {
	// CountriesURL returns the RestCountries v2 country list.
	CountriesURL string `mapstructure:"countries_url" default:"https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies"`
	// RatesURL returns the latest USD based exchange rates.
	RatesURL string `mapstructure:"rates_url" default:"https://open.er-api.com/v6/latest/USD"`
	// TimeoutSeconds bounds each upstream request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// UserAgent is sent with every upstream request.
	UserAgent string `mapstructure:"user_agent" default:"country-currency/1.0"`
}

// Timeout returns the per-request timeout, falling back to ten seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
