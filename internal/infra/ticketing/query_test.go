package ticketing

import (
	"testing"

	"happnings/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchParams(t *testing.T) {
	t.Parallel()

	t.Run("geographic query with classification", func(t *testing.T) {
		t.Parallel()

		params := buildSearchParams(&service.EventQuery{
			Latitude:         55.6761,
			Longitude:        12.5683,
			RadiusMiles:      31,
			StartDateTime:    "2026-08-29T00:00:00Z",
			EndDateTime:      "2026-08-29T23:59:59Z",
			ClassificationID: "KZFzniwnSyZfZ7v7nJ",
			PageSize:         20,
		})

		assert.Equal(t, "55.6761,12.5683", params.Get("latlong"))
		assert.Equal(t, "31", params.Get("radius"))
		assert.Equal(t, "miles", params.Get("unit"))
		assert.Equal(t, "2026-08-29T00:00:00Z", params.Get("startDateTime"))
		assert.Equal(t, "2026-08-29T23:59:59Z", params.Get("endDateTime"))
		assert.Equal(t, "KZFzniwnSyZfZ7v7nJ", params.Get("classificationId"))
		assert.Equal(t, "date,asc", params.Get("sort"))
		assert.False(t, params.Has("keyword"))
	})

	t.Run("keyword query omits geo filters", func(t *testing.T) {
		t.Parallel()

		params := buildSearchParams(&service.EventQuery{Keyword: "jazz festival", PageSize: 20})

		assert.Equal(t, "jazz festival", params.Get("keyword"))
		assert.Equal(t, "20", params.Get("size"))
		assert.False(t, params.Has("latlong"))
		assert.False(t, params.Has("radius"))
		assert.False(t, params.Has("unit"))
	})
}
