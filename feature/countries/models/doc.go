// Package models defines the country record, the metadata entry and the
// upstream payload shapes of the RestCountries and exchange rate services.
package models
