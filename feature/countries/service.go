package countries

import (
	"context"
	"fmt"
	"io"

	"country-currency/core/apperrors"
	"country-currency/feature/countries/models"
	"country-currency/feature/countries/reconcile"
	"country-currency/feature/countries/store"

	"go.uber.org/zap"
)

// ImageSource serves the latest summary image.
type ImageSource interface {
	Open(ctx context.Context) (io.ReadCloser, int64, error)
}

// Service exposes the country operations used by the HTTP handler.
type Service struct {
	engine *reconcile.Engine
	store  *store.Store
	images ImageSource
	logger *zap.Logger
}

// NewService creates a new countries service. images may be nil when storage is disabled.
func NewService(engine *reconcile.Engine, st *store.Store, images ImageSource, logger *zap.Logger) *Service {
	return &Service{
		engine: engine,
		store:  st,
		images: images,
		logger: logger,
	}
}

// Refresh runs a reconciliation cycle.
func (s *Service) Refresh(ctx context.Context) (*reconcile.Result, error) {
	return s.engine.Refresh(ctx)
}

// List returns the countries matching the filter in the requested order.
func (s *Service) List(ctx context.Context, f store.Filter, sort store.Sort) ([]models.Country, error) {
	return s.store.List(ctx, f, sort)
}

// Get returns a single country by case-insensitive name.
func (s *Service) Get(ctx context.Context, name string) (*models.Country, error) {
	return s.store.FindByName(ctx, name)
}

// Delete removes a single country by case-insensitive name.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.store.Delete(ctx, name); err != nil {
		return err
	}
	s.logger.Info("Country deleted", zap.String("country", name))
	return nil
}

// Status returns the record count and last refresh time.
func (s *Service) Status(ctx context.Context) (*models.Status, error) {
	return s.store.Status(ctx)
}

// Image opens the latest summary image.
func (s *Service) Image(ctx context.Context) (io.ReadCloser, int64, error) {
	if s.images == nil {
		return nil, 0, fmt.Errorf("summary image: %w", apperrors.ErrNotFound)
	}
	return s.images.Open(ctx)
}
