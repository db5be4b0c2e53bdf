package countries_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"country-currency/core/apperrors"
	"country-currency/core/database"
	"country-currency/core/storage/mocks"
	"country-currency/feature/countries"
	"country-currency/feature/countries/gdp"
	"country-currency/feature/countries/models"
	"country-currency/feature/countries/reconcile"
	"country-currency/feature/countries/store"
	"country-currency/feature/summary"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFetcher struct {
	countries []models.RemoteCountry
	rates     map[string]float64
	err       error
}

func (f *stubFetcher) FetchCountries(ctx context.Context) ([]models.RemoteCountry, error) {
	return f.countries, f.err
}

func (f *stubFetcher) FetchRates(ctx context.Context) (map[string]float64, error) {
	return f.rates, nil
}

type testEnv struct {
	app     *fiber.App
	store   *store.Store
	fetcher *stubFetcher
	client  *mocks.Client
}

func setupApp(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	st := store.New(db)
	require.NoError(t, st.Migrate(context.Background()))

	fetcher := &stubFetcher{
		countries: []models.RemoteCountry{
			{Name: "Nigeria", Capital: "Abuja", Region: "Africa", Population: 1000, Currencies: []models.RemoteCurrency{{Code: "NGN"}}},
			{Name: "Ghana", Capital: "Accra", Region: "Africa", Population: 500, Currencies: []models.RemoteCurrency{{Code: "GHS"}}},
			{Name: "France", Capital: "Paris", Region: "Europe", Population: 800, Currencies: []models.RemoteCurrency{{Code: "EUR"}}},
			{Name: "Antarctica", Region: "Polar", Population: 10},
		},
		rates: map[string]float64{"NGN": 1000, "GHS": 10, "EUR": 1},
	}

	client := new(mocks.Client)
	reporter := summary.NewReporter(client, "countries", summary.Config{ObjectName: "summary/cache_summary.png", QueueSize: 4}, logger, nil)
	engine := reconcile.NewEngine(fetcher, st, gdp.NewEstimator(gdp.Fixed(1000)), reporter, reconcile.Config{TopN: 5}, logger, nil)

	svc := countries.NewService(engine, st, reporter, logger)
	app := fiber.New()
	require.NoError(t, countries.NewFeature(svc).Load(app))

	return &testEnv{app: app, store: st, fetcher: fetcher, client: client}
}

func do(t *testing.T, app *fiber.App, method, target string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil), 2000)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func refresh(t *testing.T, env *testEnv) map[string]any {
	t.Helper()
	status, body := do(t, env.app, "POST", "/countries/refresh")
	require.Equal(t, 200, status, string(body))

	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestHandleRefresh(t *testing.T) {
	env := setupApp(t)

	out := refresh(t, env)
	assert.Equal(t, "Refreshed 4 countries", out["message"])
	assert.Equal(t, 4.0, out["inserted"])
	assert.Equal(t, 0.0, out["updated"])
	assert.Equal(t, []any{}, out["failed"])
	assert.NotEmpty(t, out["timestamp"])

	out = refresh(t, env)
	assert.Equal(t, 0.0, out["inserted"])
	assert.Equal(t, 4.0, out["updated"])
}

func TestHandleRefresh_Unavailable(t *testing.T) {
	env := setupApp(t)
	env.fetcher.err = apperrors.NewExternal("restcountries", errors.New("http 502"))

	status, body := do(t, env.app, "POST", "/countries/refresh")
	assert.Equal(t, 503, status)

	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "External data source unavailable", out["error"])
	assert.Equal(t, "could not fetch data from restcountries: http 502", out["details"])

	n, err := env.store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestHandleList(t *testing.T) {
	env := setupApp(t)
	refresh(t, env)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"All", "/countries", []string{"Nigeria", "Ghana", "France", "Antarctica"}},
		{"Region", "/countries?region=africa", []string{"Nigeria", "Ghana"}},
		{"Currency", "/countries?currency=eur", []string{"France"}},
		{"GDP Desc", "/countries?sort=gdp_desc", []string{"France", "Ghana", "Nigeria", "Antarctica"}},
		{"Name Asc", "/countries?sort=name_asc", []string{"Antarctica", "France", "Ghana", "Nigeria"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, env.app, "GET", tt.target)
			require.Equal(t, 200, status)

			var list []models.Country
			require.NoError(t, json.Unmarshal(body, &list))
			got := make([]string, 0, len(list))
			for _, c := range list {
				got = append(got, c.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandleList_Invalid(t *testing.T) {
	env := setupApp(t)

	for _, target := range []string{"/countries?sort=random", "/countries?currency=N9N"} {
		status, body := do(t, env.app, "GET", target)
		assert.Equal(t, 400, status, target)
		assert.Contains(t, string(body), "Validation failed")
	}
}

func TestHandleGet(t *testing.T) {
	env := setupApp(t)
	refresh(t, env)

	status, body := do(t, env.app, "GET", "/countries/NIGERIA")
	require.Equal(t, 200, status)

	var c map[string]any
	require.NoError(t, json.Unmarshal(body, &c))
	assert.Equal(t, "Nigeria", c["name"])
	assert.Equal(t, "NGN", c["currency_code"])
	assert.Equal(t, 1000.0, c["exchange_rate"])
	assert.Equal(t, 1000.0, c["estimated_gdp"])

	status, body = do(t, env.app, "GET", "/countries/Atlantis")
	assert.Equal(t, 404, status)
	assert.JSONEq(t, `{"error":"Country not found"}`, string(body))
}

func TestHandleDelete(t *testing.T) {
	env := setupApp(t)
	refresh(t, env)

	status, _ := do(t, env.app, "DELETE", "/countries/france")
	assert.Equal(t, 204, status)

	status, _ = do(t, env.app, "GET", "/countries/France")
	assert.Equal(t, 404, status)

	status, _ = do(t, env.app, "DELETE", "/countries/France")
	assert.Equal(t, 404, status)
}

func TestHandleStatus(t *testing.T) {
	env := setupApp(t)

	status, body := do(t, env.app, "GET", "/status")
	require.Equal(t, 200, status)
	assert.JSONEq(t, `{"total_countries":0,"last_refreshed_at":null}`, string(body))

	refresh(t, env)
	status, body = do(t, env.app, "GET", "/status")
	require.Equal(t, 200, status)

	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 4.0, out["total_countries"])
	assert.NotNil(t, out["last_refreshed_at"])
}

func TestHandleImage(t *testing.T) {
	env := setupApp(t)
	png := []byte("\x89PNG\r\n\x1a\n")
	env.client.On("StatObject", mock.Anything, "countries", "summary/cache_summary.png", mock.Anything).
		Return(minio.ObjectInfo{Size: int64(len(png))}, nil)
	env.client.On("GetObject", mock.Anything, "countries", "summary/cache_summary.png", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(png)), nil)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/countries/image", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, png, body)
}

func TestHandleImage_NotFound(t *testing.T) {
	env := setupApp(t)
	env.client.On("StatObject", mock.Anything, "countries", "summary/cache_summary.png", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})

	status, body := do(t, env.app, "GET", "/countries/image")
	assert.Equal(t, 404, status)
	assert.JSONEq(t, `{"error":"Summary image not found"}`, string(body))
}

func TestFeature(t *testing.T) {
	f := countries.NewFeature(countries.NewService(nil, nil, nil, zap.NewNop()))
	assert.Equal(t, "countries", f.Name())
	assert.True(t, f.IsEnabled())
}
