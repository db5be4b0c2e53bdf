package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"country-currency/core/apperrors"
	"country-currency/core/metrics"
	"country-currency/core/reconcile"
	"country-currency/feature/countries/gdp"
	"country-currency/feature/countries/models"
	"country-currency/feature/summary"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Fetcher loads the upstream datasets.
type Fetcher interface {
	FetchCountries(ctx context.Context) ([]models.RemoteCountry, error)
	FetchRates(ctx context.Context) (map[string]float64, error)
}

// Store is the subset of the record store a refresh writes to.
type Store interface {
	Upsert(ctx context.Context, c *models.Country) (reconcile.Outcome, error)
	SetMetadata(ctx context.Context, key, value string) error
	Count(ctx context.Context) (int64, error)
	TopByGDP(ctx context.Context, n int) ([]models.TopEntry, error)
}

// Result summarizes one refresh cycle.
type Result struct {
	Inserted  int                   `json:"inserted"`
	Updated   int                   `json:"updated"`
	Skipped   int                   `json:"skipped"`
	Failed    []reconcile.ItemError `json:"failed"`
	Timestamp time.Time             `json:"timestamp"`
}

// Engine merges freshly fetched countries and rates into the record store.
type Engine struct {
	fetcher   Fetcher
	store     Store
	estimator *gdp.Estimator
	publisher summary.Publisher
	cfg       Config
	logger    *zap.Logger
	metrics   *metrics.Metrics
	validate  *validator.Validate
	guard     *reconcile.Guard[*Result]
	now       func() time.Time
}

// NewEngine creates an engine. publisher and m may be nil.
func NewEngine(fetcher Fetcher, store Store, estimator *gdp.Estimator, publisher summary.Publisher, cfg Config, logger *zap.Logger, m *metrics.Metrics) *Engine {
	if publisher == nil {
		publisher = summary.Discard
	}
	if estimator == nil {
		estimator = gdp.NewEstimator(nil)
	}
	if cfg.TopN <= 0 {
		cfg.TopN = 5
	}
	return &Engine{
		fetcher:   fetcher,
		store:     store,
		estimator: estimator,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		metrics:   m,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		guard:     reconcile.NewGuard[*Result]("countries-refresh"),
		now:       time.Now,
	}
}

// Refresh runs one reconciliation cycle. Calls made while a cycle is running
// wait for it and receive its result instead of starting another one.
// A fetch failure aborts the cycle before any write.
func (e *Engine) Refresh(ctx context.Context) (*Result, error) {
	// The cycle outlives a caller that stops waiting so it never stops half written.
	runCtx := context.WithoutCancel(ctx)
	res, shared, err := e.guard.Do(ctx, func() (*Result, error) {
		return e.run(runCtx)
	})
	if shared {
		e.logger.Debug("Refresh result shared with concurrent callers")
	}
	return res, err
}

func (e *Engine) run(ctx context.Context) (*Result, error) {
	started := e.now()
	e.logger.Info("Refresh started")

	countries, rates, err := reconcile.LoadBoth[[]models.RemoteCountry, map[string]float64](
		ctx, e.fetcher.FetchCountries, e.fetcher.FetchRates)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, apperrors.ErrExternalServiceUnavailable) {
			outcome = metrics.OutcomeUnavailable
		}
		e.metrics.ObserveRefresh(outcome, started, 0, 0, 0)
		e.logger.Error("Refresh aborted, upstream fetch failed", zap.Error(err))
		return nil, err
	}

	refreshedAt := e.now().UTC().Truncate(time.Second)
	e.logger.Info("Upstream data loaded",
		zap.Int("countries", len(countries)),
		zap.Int("rates", len(rates)))

	tally, err := reconcile.Apply(ctx, countries,
		func(c models.RemoteCountry) string { return c.Name },
		func(ctx context.Context, c models.RemoteCountry) (reconcile.Outcome, error) {
			return e.applyCountry(ctx, c, rates, refreshedAt)
		},
		func(key string, err error) {
			e.logger.Warn("Country not reconciled", zap.String("country", key), zap.Error(err))
		},
	)
	if err != nil {
		e.metrics.ObserveRefresh(metrics.OutcomeError, started, tally.Inserted, tally.Updated, len(tally.Failed))
		return nil, fmt.Errorf("refresh interrupted: %w", err)
	}

	if err := e.store.SetMetadata(ctx, models.MetadataLastRefreshedAt, refreshedAt.Format(time.RFC3339)); err != nil {
		e.metrics.ObserveRefresh(metrics.OutcomeError, started, tally.Inserted, tally.Updated, len(tally.Failed))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInternal, err)
	}

	e.publishSummary(ctx, refreshedAt)
	e.metrics.ObserveRefresh(metrics.OutcomeSuccess, started, tally.Inserted, tally.Updated, len(tally.Failed))

	e.logger.Info("Refresh completed",
		zap.Int("inserted", tally.Inserted),
		zap.Int("updated", tally.Updated),
		zap.Int("skipped", tally.Skipped),
		zap.Int("failed", len(tally.Failed)),
		zap.Duration("duration", time.Since(started)))

	return &Result{
		Inserted:  tally.Inserted,
		Updated:   tally.Updated,
		Skipped:   tally.Skipped,
		Failed:    tally.Failed,
		Timestamp: refreshedAt,
	}, nil
}

// applyCountry validates c, prices it in its first listed currency and upserts it.
func (e *Engine) applyCountry(ctx context.Context, c models.RemoteCountry, rates map[string]float64, at time.Time) (reconcile.Outcome, error) {
	if err := e.validate.Struct(c); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	record := &models.Country{
		Name:            c.Name,
		Capital:         models.StringPtr(c.Capital),
		Region:          models.StringPtr(c.Region),
		Population:      c.Population,
		FlagURL:         models.StringPtr(c.Flag),
		LastRefreshedAt: at,
	}

	if code := c.PrimaryCurrency(); code != "" {
		record.CurrencyCode = &code
		rate, ok := rates[code]
		record.ExchangeRate = gdp.Rate(rate, ok)
		record.EstimatedGDP = e.estimator.Estimate(c.Population, record.ExchangeRate)
	}

	return e.store.Upsert(ctx, record)
}

// publishSummary reads the post-refresh totals and hands them to the publisher.
// Failures here are logged only; the refresh itself already committed.
func (e *Engine) publishSummary(ctx context.Context, at time.Time) {
	total, err := e.store.Count(ctx)
	if err != nil {
		e.logger.Warn("Summary skipped, count failed", zap.Error(err))
		return
	}
	top, err := e.store.TopByGDP(ctx, e.cfg.TopN)
	if err != nil {
		e.logger.Warn("Summary skipped, top countries failed", zap.Error(err))
		return
	}

	e.publisher.Publish(summary.Event{
		Total:       total,
		Top:         top,
		RefreshedAt: at,
	})
}
