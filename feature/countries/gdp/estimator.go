package gdp

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

const (
	// MinMultiplier is the inclusive lower bound of the per-capita multiplier.
	MinMultiplier = 1000.0
	// MaxMultiplier is the exclusive upper bound of the per-capita multiplier.
	MaxMultiplier = 2000.0
	// Scale is the number of decimal places kept on an estimate.
	Scale = 2
)

// MultiplierSource yields a multiplier in [MinMultiplier, MaxMultiplier).
type MultiplierSource interface {
	Multiplier() float64
}

// MultiplierFunc adapts a plain function to MultiplierSource.
type MultiplierFunc func() float64

// Multiplier calls f.
func (f MultiplierFunc) Multiplier() float64 {
	return f()
}

// Fixed always returns m. Intended for tests.
func Fixed(m float64) MultiplierSource {
	return MultiplierFunc(func() float64 { return m })
}

// Uniform draws a fresh multiplier from the default random source on every call.
func Uniform() MultiplierSource {
	return MultiplierFunc(func() float64 {
		return MinMultiplier + rand.Float64()*(MaxMultiplier-MinMultiplier)
	})
}

// Estimator computes population * multiplier / rate.
type Estimator struct {
	source MultiplierSource
}

// NewEstimator returns an estimator drawing from source, or Uniform when nil.
func NewEstimator(source MultiplierSource) *Estimator {
	if source == nil {
		source = Uniform()
	}
	return &Estimator{source: source}
}

// Estimate returns the GDP estimate, or an invalid value if rate is not positive.
func (e *Estimator) Estimate(population int64, rate decimal.NullDecimal) decimal.NullDecimal {
	if !rate.Valid || !rate.Decimal.IsPositive() {
		return decimal.NullDecimal{}
	}

	multiplier := decimal.NewFromFloat(e.source.Multiplier())
	value := decimal.NewFromInt(population).
		Mul(multiplier).
		DivRound(rate.Decimal, Scale+4).
		Truncate(Scale)

	return decimal.NewNullDecimal(value)
}

// Rate converts a raw upstream rate to a nullable decimal, null unless positive.
func Rate(rate float64, ok bool) decimal.NullDecimal {
	if !ok || rate <= 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(rate))
}
