package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimaryCurrency(t *testing.T) {
	tests := []struct {
		name    string
		country RemoteCountry
		want    string
	}{
		{"None", RemoteCountry{Name: "Noland"}, ""},
		{"Single", RemoteCountry{Currencies: []RemoteCurrency{{Code: "NGN"}}}, "NGN"},
		{"First Wins", RemoteCountry{Currencies: []RemoteCurrency{{Code: "EUR"}, {Code: "USD"}}}, "EUR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.country.PrimaryCurrency())
		})
	}
}

func TestCountryJSON(t *testing.T) {
	c := Country{
		ID:              1,
		Name:            "Testland",
		NameKey:         "testland",
		Population:      1000,
		CurrencyCode:    StringPtr("TST"),
		ExchangeRate:    decimal.NewNullDecimal(decimal.RequireFromString("2.5")),
		LastRefreshedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, 2.5, body["exchange_rate"])
	assert.Nil(t, body["estimated_gdp"])
	assert.Nil(t, body["capital"])
	assert.Equal(t, "TST", body["currency_code"])
	_, hasKey := body["name_key"]
	assert.False(t, hasKey)
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(""))
	require.NotNil(t, StringPtr("Abuja"))
	assert.Equal(t, "Abuja", *StringPtr("Abuja"))
}
