package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"country-currency/core/apperrors"
	"country-currency/feature/countries/models"
)

const (
	// SourceCountries names the RestCountries upstream in errors.
	SourceCountries = "restcountries"
	// SourceRates names the exchange rate upstream in errors.
	SourceRates = "exchange_rates"
)

// Client fetches country and exchange rate data from the upstream services.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a client bounded by cfg.Timeout.
func NewClient(cfg Config) *Client {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout:   cfg.Timeout(),
			Transport: tr,
		},
	}
}

// FetchCountries returns the full country list.
func (c *Client) FetchCountries(ctx context.Context) ([]models.RemoteCountry, error) {
	var countries []models.RemoteCountry
	if err := c.getJSON(ctx, c.cfg.CountriesURL, &countries); err != nil {
		return nil, apperrors.NewExternal(SourceCountries, err)
	}
	return countries, nil
}

// FetchRates returns currency code to units-per-USD.
func (c *Client) FetchRates(ctx context.Context) (map[string]float64, error) {
	var body models.RatesResponse
	if err := c.getJSON(ctx, c.cfg.RatesURL, &body); err != nil {
		return nil, apperrors.NewExternal(SourceRates, err)
	}
	if body.Result != "" && body.Result != "success" {
		return nil, apperrors.NewExternal(SourceRates, fmt.Errorf("result %q", body.Result))
	}
	if body.Rates == nil {
		return nil, apperrors.NewExternal(SourceRates, fmt.Errorf("response has no rates"))
	}
	return body.Rates, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("http %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
