package models

// RemoteCountry is one entry of the RestCountries v2 payload.
type RemoteCountry struct {
	Name       string           `json:"name" validate:"required"`
	Capital    string           `json:"capital"`
	Region     string           `json:"region"`
	Population int64            `json:"population" validate:"gte=0"`
	Flag       string           `json:"flag"`
	Currencies []RemoteCurrency `json:"currencies"`
}

// RemoteCurrency is one currency entry of a RestCountries country.
type RemoteCurrency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// PrimaryCurrency returns the first listed currency code, or "" when none is listed.
// Countries with several currencies are priced in the first one only.
func (c RemoteCountry) PrimaryCurrency() string {
	if len(c.Currencies) == 0 {
		return ""
	}
	return c.Currencies[0].Code
}

// RatesResponse is the open.er-api.com latest rates payload.
type RatesResponse struct {
	Result   string             `json:"result"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}
