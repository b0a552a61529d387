package ticketing

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"happnings/config"
	"happnings/internal/domain/service"
	"happnings/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchFixture = `{
  "_embedded": {
    "events": [
      {
        "id": "Z698xZb_Z17q339",
        "name": "Roskilde Festival 2026",
        "url": "https://tickets.example/roskilde",
        "images": [
          {"url": "https://img.example/wide.jpg", "ratio": "16_9", "width": 1024, "height": 576}
        ],
        "dates": {"start": {"localDate": "2026-06-27", "localTime": "12:00:00"}},
        "classifications": [
          {"segment": {"id": "KZFzniwnSyZfZ7v7nJ", "name": "Music"}, "genre": {"id": "KnvZfZ7vAeA", "name": "Rock"}}
        ],
        "priceRanges": [{"currency": "DKK", "min": 250, "max": 2200}],
        "_embedded": {
          "venues": [
            {
              "name": "Dyrskuepladsen",
              "city": {"name": "Roskilde"},
              "postalCode": "4000",
              "address": {"line1": "Darupvej 19"},
              "country": {"name": "Denmark"},
              "location": {"latitude": "55.6203", "longitude": "12.0703"}
            }
          ]
        }
      }
    ]
  },
  "page": {"size": 20, "totalElements": 1, "totalPages": 1, "number": 0}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &client{
		baseURL:    server.URL,
		apiKey:     "test-key",
		httpClient: &http.Client{Timeout: time.Second},
		logger:     slog.Default(),
	}
}

func TestSearchEvents(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "miles", r.URL.Query().Get("unit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchFixture))
	})

	events, err := c.SearchEvents(context.Background(), &service.EventQuery{
		Latitude:    55.6761,
		Longitude:   12.5683,
		RadiusMiles: 31,
		PageSize:    20,
	})
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, "Z698xZb_Z17q339", event.ID)
	assert.Equal(t, "Roskilde Festival 2026", event.Name)
	assert.Equal(t, "2026-06-27", event.Date)
	assert.Equal(t, "12:00:00", event.Time)
	assert.Equal(t, "Rock", event.Genre)
	assert.Equal(t, "250.00 DKK", event.Price)
	require.NotNil(t, event.Image.URL)
	assert.Equal(t, "https://img.example/wide.jpg", *event.Image.URL)
	assert.Equal(t, "Dyrskuepladsen", event.Venue.Name)
	assert.Equal(t, "Roskilde", event.Venue.Address.City)
}

func TestSearchEventsEmptyResult(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page": {"size": 20, "totalElements": 0, "totalPages": 0, "number": 0}}`))
	})

	events, err := c.SearchEvents(context.Background(), &service.EventQuery{Keyword: "nothing"})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestGetEventByIDNotFound(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetEventByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListClassifications(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/classifications", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "_embedded": {
    "classifications": [
      {"segment": {"id": "KZFzniwnSyZfZ7v7nJ", "name": "Music", "_embedded": {"genres": [{"id": "KnvZfZ7vAeA", "name": "Rock"}]}}},
      {}
    ]
  }
}`))
	})

	classifications, err := c.ListClassifications(context.Background())
	require.NoError(t, err)
	require.Len(t, classifications, 1, "entries without a segment are skipped")
	assert.Equal(t, "Music", classifications[0].Segment.Name)
	require.Len(t, classifications[0].Genres, 1)
	assert.Equal(t, "Rock", classifications[0].Genres[0].Name)
}

func TestUpstreamFailure(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.SearchEvents(context.Background(), &service.EventQuery{Keyword: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestNewWithoutConfigSection(t *testing.T) {
	t.Parallel()

	provider := New(Params{
		Config: &config.Config{},
		Logger: slog.Default(),
	})
	require.NotNil(t, provider)
}
