package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"country-currency/core/apperrors"
	"country-currency/core/database"
	"country-currency/core/reconcile"
	"country-currency/feature/countries/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	s := New(db)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func setupMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return New(gormDB), mock
}

func country(name, region, currency string, population int64, rate, gdp string) *models.Country {
	c := &models.Country{
		Name:            name,
		Region:          models.StringPtr(region),
		CurrencyCode:    models.StringPtr(currency),
		Population:      population,
		LastRefreshedAt: time.Now().UTC(),
	}
	if rate != "" {
		c.ExchangeRate = decimal.NewNullDecimal(decimal.RequireFromString(rate))
	}
	if gdp != "" {
		c.EstimatedGDP = decimal.NewNullDecimal(decimal.RequireFromString(gdp))
	}
	return c
}

func seed(t *testing.T, s *Store, countries ...*models.Country) {
	t.Helper()
	for _, c := range countries {
		_, err := s.Upsert(context.Background(), c)
		require.NoError(t, err)
	}
}

func names(countries []models.Country) []string {
	out := make([]string, 0, len(countries))
	for _, c := range countries {
		out = append(out, c.Name)
	}
	return out
}

func TestUpsert(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	outcome, err := s.Upsert(ctx, country("Nigeria", "Africa", "NGN", 100, "1600", "93750"))
	require.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeInserted, outcome)

	updated := country("NIGERIA", "Africa", "", 200, "", "")
	outcome, err = s.Upsert(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeUpdated, outcome)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.FindByName(ctx, "nigeria")
	require.NoError(t, err)
	assert.Equal(t, "Nigeria", got.Name)
	assert.Equal(t, int64(200), got.Population)
	assert.Nil(t, got.CurrencyCode)
	assert.False(t, got.ExchangeRate.Valid)
	assert.False(t, got.EstimatedGDP.Valid)
}

func TestUpsert_EmptyName(t *testing.T) {
	s := setupStore(t)

	_, err := s.Upsert(context.Background(), country("  ", "", "", 1, "", ""))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFindByName_NotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.FindByName(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestList(t *testing.T) {
	s := setupStore(t)
	seed(t, s,
		country("Ghana", "Africa", "GHS", 30, "15", "3000"),
		country("France", "Europe", "EUR", 60, "0.9", "100000"),
		country("Nigeria", "Africa", "NGN", 200, "1600", "187.5"),
		country("Antarctica", "Polar", "", 1, "", ""),
	)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter Filter
		sort   Sort
		want   []string
	}{
		{"Default Order", Filter{}, SortDefault, []string{"Ghana", "France", "Nigeria", "Antarctica"}},
		{"GDP Desc Nulls Last", Filter{}, SortGDPDesc, []string{"France", "Ghana", "Nigeria", "Antarctica"}},
		{"GDP Asc Nulls Last", Filter{}, SortGDPAsc, []string{"Nigeria", "Ghana", "France", "Antarctica"}},
		{"Population Desc", Filter{}, SortPopulationDesc, []string{"Nigeria", "France", "Ghana", "Antarctica"}},
		{"Population Asc", Filter{}, SortPopulationAsc, []string{"Antarctica", "Ghana", "France", "Nigeria"}},
		{"Name Asc", Filter{}, SortNameAsc, []string{"Antarctica", "France", "Ghana", "Nigeria"}},
		{"Name Desc", Filter{}, SortNameDesc, []string{"Nigeria", "Ghana", "France", "Antarctica"}},
		{"Region Case Insensitive", Filter{Region: "africa"}, SortDefault, []string{"Ghana", "Nigeria"}},
		{"Currency Case Insensitive", Filter{Currency: "ngn"}, SortDefault, []string{"Nigeria"}},
		{"Both Filters", Filter{Region: "Africa", Currency: "GHS"}, SortDefault, []string{"Ghana"}},
		{"No Match", Filter{Region: "Oceania"}, SortDefault, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.List(ctx, tt.filter, tt.sort)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestList_InvalidSort(t *testing.T) {
	s := setupStore(t)

	_, err := s.List(context.Background(), Filter{}, Sort("bogus"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseSort(t *testing.T) {
	got, err := ParseSort("GDP_DESC")
	require.NoError(t, err)
	assert.Equal(t, SortGDPDesc, got)

	got, err = ParseSort("")
	require.NoError(t, err)
	assert.Equal(t, SortDefault, got)

	_, err = ParseSort("population")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDelete(t *testing.T) {
	s := setupStore(t)
	seed(t, s, country("Ghana", "Africa", "GHS", 30, "15", "3000"))
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, "GHANA"))

	_, err := s.FindByName(ctx, "Ghana")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = s.Delete(ctx, "Ghana")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTopByGDP(t *testing.T) {
	s := setupStore(t)
	seed(t, s,
		country("A", "", "", 1, "1", "10"),
		country("B", "", "", 1, "1", "50"),
		country("C", "", "", 1, "", ""),
		country("D", "", "", 1, "1", "30"),
	)
	ctx := context.Background()

	top, err := s.TopByGDP(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Name)
	assert.True(t, decimal.NewFromInt(50).Equal(top[0].EstimatedGDP))
	assert.Equal(t, "D", top[1].Name)

	top, err = s.TopByGDP(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, top, 3)

	top, err = s.TopByGDP(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestMetadata(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	v, err := s.GetMetadata(ctx, models.MetadataLastRefreshedAt)
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.SetMetadata(ctx, models.MetadataLastRefreshedAt, "2025-01-01T00:00:00Z"))
	require.NoError(t, s.SetMetadata(ctx, models.MetadataLastRefreshedAt, "2025-02-01T00:00:00Z"))

	v, err = s.GetMetadata(ctx, models.MetadataLastRefreshedAt)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "2025-02-01T00:00:00Z", *v)

	status, err := s.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.TotalCountries)
	require.NotNil(t, status.LastRefreshedAt)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), status.LastRefreshedAt.UTC())
}

func TestStatus_NeverRefreshed(t *testing.T) {
	s := setupStore(t)
	seed(t, s, country("Ghana", "Africa", "GHS", 30, "15", "3000"))

	status, err := s.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.TotalCountries)
	assert.Nil(t, status.LastRefreshedAt)
}

func TestStore_DatabaseErrors(t *testing.T) {
	boom := errors.New("connection reset")

	t.Run("Count", func(t *testing.T) {
		s, mock := setupMockStore(t)
		mock.ExpectQuery("SELECT count").WillReturnError(boom)

		_, err := s.Count(context.Background())
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Upsert Rolls Back", func(t *testing.T) {
		s, mock := setupMockStore(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT \\* FROM `countries`").WillReturnError(boom)
		mock.ExpectRollback()

		_, err := s.Upsert(context.Background(), country("Ghana", "", "", 1, "", ""))
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "Ghana")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete", func(t *testing.T) {
		s, mock := setupMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `countries`").WillReturnError(boom)
		mock.ExpectRollback()

		err := s.Delete(context.Background(), "Ghana")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Metadata", func(t *testing.T) {
		s, mock := setupMockStore(t)
		mock.ExpectQuery("SELECT \\* FROM `metadata`").WillReturnError(boom)

		_, err := s.GetMetadata(context.Background(), models.MetadataLastRefreshedAt)
		assert.ErrorIs(t, err, boom)
	})
}
