package cmd

import (
	"context"
	"fmt"

	"country-currency/core/config"
	"country-currency/core/database"
	"country-currency/core/logger"
	"country-currency/core/metrics"
	"country-currency/core/storage"
	"country-currency/feature/countries/gdp"
	"country-currency/feature/countries/reconcile"
	"country-currency/feature/countries/sources"
	"country-currency/feature/countries/store"
	"country-currency/feature/summary"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// components are the services shared by the start and refresh commands.
type components struct {
	cfg      *config.Config
	logger   *zap.Logger
	db       *gorm.DB
	store    *store.Store
	storage  storage.Client
	metrics  *metrics.Metrics
	reporter *summary.Reporter
}

// bootstrap loads configuration and connects the database and object storage.
// The schema is migrated before returning.
func bootstrap(ctx context.Context) (*components, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	l.Info("Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.String("name", cfg.Database.Name))

	st := store.New(db)
	if err := st.Migrate(ctx); err != nil {
		return nil, err
	}

	c := &components{
		cfg:    cfg,
		logger: l,
		db:     db,
		store:  st,
	}
	if cfg.Metrics.Enabled {
		c.metrics = metrics.New()
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		// The API keeps working without the summary image.
		l.Warn("Storage unavailable, summary image disabled", zap.Error(err))
		return c, nil
	}
	c.storage = client
	c.reporter = summary.NewReporter(client, cfg.Storage.Bucket, cfg.Summary, l, c.metrics)
	return c, nil
}

// engine builds the reconciliation engine publishing to publisher.
func (c *components) engine(publisher summary.Publisher) *reconcile.Engine {
	return reconcile.NewEngine(
		sources.NewClient(c.cfg.Sources),
		c.store,
		gdp.NewEstimator(nil),
		publisher,
		c.cfg.Refresh,
		c.logger,
		c.metrics,
	)
}

func (c *components) close() {
	if sqlDB, err := c.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = c.logger.Sync()
}
