package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"country-currency/core/apperrors"
	"country-currency/core/reconcile"
	"country-currency/feature/countries/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists country records and metadata entries.
type Store struct {
	db *gorm.DB
}

// New creates a store backed by db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the countries and metadata tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Country{}, &models.Metadata{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Upsert inserts c or updates the record with the same case-insensitive name.
// Each call commits in its own transaction. The stored display name is kept on update.
func (s *Store) Upsert(ctx context.Context, c *models.Country) (reconcile.Outcome, error) {
	c.NameKey = reconcile.FoldKey(c.Name)
	if c.NameKey == "" {
		return "", fmt.Errorf("%w: country name is empty", apperrors.ErrValidation)
	}

	outcome := reconcile.OutcomeUpdated
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Country
		err := tx.Where("name_key = ?", c.NameKey).Take(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			outcome = reconcile.OutcomeInserted
			return tx.Create(c).Error
		case err != nil:
			return err
		}

		c.ID = existing.ID
		c.Name = existing.Name
		return tx.Model(c).Select(models.MutableColumns).Updates(c).Error
	})
	if err != nil {
		return "", fmt.Errorf("failed to upsert %q: %w", c.Name, err)
	}
	return outcome, nil
}

// FindByName returns the record whose name matches case-insensitively.
func (s *Store) FindByName(ctx context.Context, name string) (*models.Country, error) {
	var c models.Country
	err := s.db.WithContext(ctx).Where("name_key = ?", reconcile.FoldKey(name)).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("country %q: %w", name, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find %q: %w", name, err)
	}
	return &c, nil
}

// List returns the records matching f in the requested order.
func (s *Store) List(ctx context.Context, f Filter, sort Sort) ([]models.Country, error) {
	order, ok := orderBy[sort]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported sort %q", apperrors.ErrValidation, sort)
	}

	q := s.db.WithContext(ctx).Model(&models.Country{})
	if region := strings.TrimSpace(f.Region); region != "" {
		q = q.Where("LOWER(region) = ?", strings.ToLower(region))
	}
	if currency := strings.TrimSpace(f.Currency); currency != "" {
		q = q.Where("UPPER(currency_code) = ?", strings.ToUpper(currency))
	}

	countries := make([]models.Country, 0)
	if err := q.Order(order).Find(&countries).Error; err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return countries, nil
}

// Delete removes the record whose name matches case-insensitively.
func (s *Store) Delete(ctx context.Context, name string) error {
	res := s.db.WithContext(ctx).Where("name_key = ?", reconcile.FoldKey(name)).Delete(&models.Country{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete %q: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("country %q: %w", name, apperrors.ErrNotFound)
	}
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Country{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count countries: %w", err)
	}
	return n, nil
}

// TopByGDP returns up to n records with the highest estimated GDP. Null GDPs are excluded.
func (s *Store) TopByGDP(ctx context.Context, n int) ([]models.TopEntry, error) {
	top := make([]models.TopEntry, 0, n)
	if n <= 0 {
		return top, nil
	}

	err := s.db.WithContext(ctx).
		Model(&models.Country{}).
		Select("name", "estimated_gdp").
		Where("estimated_gdp IS NOT NULL").
		Order("estimated_gdp DESC, id ASC").
		Limit(n).
		Scan(&top).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load top countries: %w", err)
	}
	return top, nil
}

// GetMetadata returns the value stored under key, or nil when the key was never written.
func (s *Store) GetMetadata(ctx context.Context, key string) (*string, error) {
	var m models.Metadata
	err := s.db.WithContext(ctx).Where("key_name = ?", key).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata %q: %w", key, err)
	}
	return m.Value, nil
}

// SetMetadata writes value under key, replacing any previous value.
func (s *Store) SetMetadata(ctx context.Context, key, value string) error {
	m := models.Metadata{
		KeyName:   key,
		Value:     &value,
		UpdatedAt: time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return fmt.Errorf("failed to write metadata %q: %w", key, err)
	}
	return nil
}

// Status returns the record count and the last refresh instant, if any.
func (s *Store) Status(ctx context.Context) (*models.Status, error) {
	total, err := s.Count(ctx)
	if err != nil {
		return nil, err
	}

	status := &models.Status{TotalCountries: total}
	raw, err := s.GetMetadata(ctx, models.MetadataLastRefreshedAt)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		ts, err := time.Parse(time.RFC3339, *raw)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed %s %q", apperrors.ErrInternal, models.MetadataLastRefreshedAt, *raw)
		}
		status.LastRefreshedAt = &ts
	}
	return status, nil
}
