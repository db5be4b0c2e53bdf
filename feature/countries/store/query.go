package store

import (
	"fmt"
	"strings"

	"country-currency/core/apperrors"
)

// Sort is a list ordering accepted by List.
type Sort string

const (
	// SortDefault orders by insertion.
	SortDefault        Sort = ""
	SortGDPDesc        Sort = "gdp_desc"
	SortGDPAsc         Sort = "gdp_asc"
	SortPopulationDesc Sort = "population_desc"
	SortPopulationAsc  Sort = "population_asc"
	SortNameAsc        Sort = "name_asc"
	SortNameDesc       Sort = "name_desc"
)

// orderBy keeps null GDPs last for both GDP orderings.
var orderBy = map[Sort]string{
	SortDefault:        "id ASC",
	SortGDPDesc:        "estimated_gdp IS NULL, estimated_gdp DESC, id ASC",
	SortGDPAsc:         "estimated_gdp IS NULL, estimated_gdp ASC, id ASC",
	SortPopulationDesc: "population DESC, id ASC",
	SortPopulationAsc:  "population ASC, id ASC",
	SortNameAsc:        "name_key ASC",
	SortNameDesc:       "name_key DESC",
}

// ParseSort validates a sort query value. The empty string selects SortDefault.
func ParseSort(raw string) (Sort, error) {
	s := Sort(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := orderBy[s]; !ok {
		return SortDefault, fmt.Errorf("%w: unsupported sort %q", apperrors.ErrValidation, raw)
	}
	return s, nil
}

// Filter narrows List results. Empty fields match everything.
type Filter struct {
	Region   string
	Currency string
}
