package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// exchange_rate and estimated_gdp are served as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Country is a persisted country record.
type Country struct {
	ID              uint                `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string              `gorm:"column:name;size:255;not null" json:"name"`
	NameKey         string              `gorm:"column:name_key;size:255;not null;uniqueIndex" json:"-"`
	Capital         *string             `gorm:"column:capital;size:255" json:"capital"`
	Region          *string             `gorm:"column:region;size:100;index" json:"region"`
	Population      int64               `gorm:"column:population;not null" json:"population"`
	CurrencyCode    *string             `gorm:"column:currency_code;size:10;index" json:"currency_code"`
	ExchangeRate    decimal.NullDecimal `gorm:"column:exchange_rate;type:decimal(20,6)" json:"exchange_rate" swaggertype:"number"`
	EstimatedGDP    decimal.NullDecimal `gorm:"column:estimated_gdp;type:decimal(30,2)" json:"estimated_gdp" swaggertype:"number"`
	FlagURL         *string             `gorm:"column:flag_url;type:text" json:"flag_url"`
	LastRefreshedAt time.Time           `gorm:"column:last_refreshed_at;not null" json:"last_refreshed_at"`
}

// TableName overrides the table name.
func (Country) TableName() string {
	return "countries"
}

// MutableColumns are overwritten when a refresh updates an existing record.
var MutableColumns = []string{
	"capital",
	"region",
	"population",
	"currency_code",
	"exchange_rate",
	"estimated_gdp",
	"flag_url",
	"last_refreshed_at",
}

// RequiredColumns lists every column the record store reads or writes.
var RequiredColumns = append([]string{"id", "name", "name_key"}, MutableColumns...)

// Metadata is a single keyed process-wide value.
type Metadata struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	KeyName   string    `gorm:"column:key_name;size:100;not null;uniqueIndex" json:"key"`
	Value     *string   `gorm:"column:value;type:text" json:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Metadata) TableName() string {
	return "metadata"
}

// MetadataLastRefreshedAt holds the RFC3339 instant of the last completed refresh.
const MetadataLastRefreshedAt = "last_refreshed_at"

// TopEntry is a country name with its estimated GDP, used by the summary.
type TopEntry struct {
	Name         string          `json:"name"`
	EstimatedGDP decimal.Decimal `json:"estimated_gdp" swaggertype:"number"`
}

// Status reports the size of the store and the last refresh instant.
type Status struct {
	TotalCountries  int64      `json:"total_countries"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at"`
}

// StringPtr returns nil for an empty string and a pointer to s otherwise.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
