package geocode

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"happnings/config"
	domainerrors "happnings/internal/domain/errors"
	"happnings/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *googleGeocoder {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &googleGeocoder{
		baseURL:    server.URL,
		apiKey:     "test-key",
		httpClient: &http.Client{Timeout: time.Second},
		logger:     slog.Default(),
	}
}

func TestGeocode(t *testing.T) {
	t.Parallel()

	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Copenhagen, Denmark", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "status": "OK",
  "results": [{"geometry": {"location": {"lat": 55.6761, "lng": 12.5683}}}]
}`))
	})

	coords, err := g.Geocode(context.Background(), "Copenhagen, Denmark")
	require.NoError(t, err)
	assert.InDelta(t, 55.6761, coords.Lat, 1e-9)
	assert.InDelta(t, 12.5683, coords.Lng, 1e-9)
}

func TestGeocodeZeroResults(t *testing.T) {
	t.Parallel()

	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, err := g.Geocode(context.Background(), "asdfghjkl")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestGeocodeUpstreamDenied(t *testing.T) {
	t.Parallel()

	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "results": [{"geometry": {"location": {"lat": 1, "lng": 2}}}]}`))
	})

	_, err := g.Geocode(context.Background(), "Copenhagen")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestNewWithoutConfigSection(t *testing.T) {
	t.Parallel()

	geocoder := New(Params{
		Config: &config.Config{},
		Logger: slog.Default(),
	})
	require.NotNil(t, geocoder)
}
