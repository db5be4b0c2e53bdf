// Package gdp estimates a country's GDP from its population and the USD
// exchange rate of its currency, scaled by a random per-capita multiplier.
package gdp
