package ticketing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickImage(t *testing.T) {
	t.Parallel()

	t.Run("prefers first wide 16:9 image", func(t *testing.T) {
		t.Parallel()

		raw := &rawEvent{}
		raw.Images = []struct {
			URL    string `json:"url"`
			Ratio  string `json:"ratio"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
		}{
			{URL: "https://img.example/3x2.jpg", Ratio: "3_2", Width: 1024, Height: 683},
			{URL: "https://img.example/small.jpg", Ratio: "16_9", Width: 100, Height: 56},
			{URL: "https://img.example/wide.jpg", Ratio: "16_9", Width: 1024, Height: 576},
			{URL: "https://img.example/wider.jpg", Ratio: "16_9", Width: 2048, Height: 1152},
		}

		img := pickImage(raw)

		require.NotNil(t, img.URL)
		assert.Equal(t, "https://img.example/wide.jpg", *img.URL)
		assert.Equal(t, 1024, img.Width)
		assert.Equal(t, 576, img.Height)
	})

	t.Run("keeps a narrow 16:9 image when no wide one exists", func(t *testing.T) {
		t.Parallel()

		raw := &rawEvent{}
		raw.Images = []struct {
			URL    string `json:"url"`
			Ratio  string `json:"ratio"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
		}{
			{URL: "https://img.example/3x2.jpg", Ratio: "3_2", Width: 1024, Height: 683},
			{URL: "https://img.example/narrow.jpg", Ratio: "16_9", Width: 480, Height: 270},
		}

		img := pickImage(raw)

		require.NotNil(t, img.URL)
		assert.Equal(t, "https://img.example/narrow.jpg", *img.URL)
		assert.Equal(t, 480, img.Width)
		assert.Equal(t, 270, img.Height)
	})

	t.Run("falls back to placeholder dimensions without url", func(t *testing.T) {
		t.Parallel()

		img := pickImage(&rawEvent{})

		assert.Nil(t, img.URL)
		assert.Equal(t, 640, img.Width)
		assert.Equal(t, 360, img.Height)
	})
}

func TestPickPrice(t *testing.T) {
	t.Parallel()

	t.Run("uses minimum of first price range", func(t *testing.T) {
		t.Parallel()

		raw := &rawEvent{}
		raw.PriceRanges = []struct {
			Currency string  `json:"currency"`
			Min      float64 `json:"min"`
			Max      float64 `json:"max"`
		}{
			{Currency: "USD", Min: 39.5, Max: 120},
			{Currency: "USD", Min: 250, Max: 400},
		}

		assert.Equal(t, "39.50 USD", pickPrice(raw))
	})

	t.Run("returns N/A without price ranges", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "N/A", pickPrice(&rawEvent{}))
	})
}

func TestPickGenre(t *testing.T) {
	t.Parallel()

	raw := &rawEvent{}
	raw.Classifications = []struct {
		Segment struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"segment"`
		Genre struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"genre"`
	}{{}}
	raw.Classifications[0].Segment.Name = "Music"
	raw.Classifications[0].Genre.Name = "Undefined"

	assert.Equal(t, "Music", pickGenre(raw), "undefined genre falls back to segment")

	raw.Classifications[0].Genre.Name = "Rock"
	assert.Equal(t, "Rock", pickGenre(raw))

	assert.Empty(t, pickGenre(&rawEvent{}))
}

func TestPickVenue(t *testing.T) {
	t.Parallel()

	raw := &rawEvent{}
	venue := rawVenue{Name: "Royal Arena", PostalCode: "2300"}
	venue.Address.Line1 = "Hannemanns Alle 18-20"
	venue.City.Name = "Copenhagen"
	venue.Country.Name = "Denmark"
	venue.Location.Latitude = "55.625814"
	venue.Location.Longitude = "12.573877"
	raw.Embedded = &struct {
		Venues []rawVenue `json:"venues"`
	}{Venues: []rawVenue{venue}}

	got := pickVenue(raw)

	assert.Equal(t, "Royal Arena", got.Name)
	assert.Equal(t, "Copenhagen", got.Address.City)
	assert.Equal(t, "Denmark", got.Address.Country)
	assert.InDelta(t, 55.625814, got.Latitude, 1e-9)
	assert.InDelta(t, 12.573877, got.Longitude, 1e-9)

	assert.Equal(t, "", pickVenue(&rawEvent{}).Name, "missing venue yields zero value")
}
