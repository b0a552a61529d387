package ticketing

import (
	"strconv"

	"happnings/internal/domain/entity"
)

const (
	placeholderWidth  = 640
	placeholderHeight = 360
)

// formatEvent projects a raw provider record onto the stable entity shape.
func formatEvent(raw *rawEvent) *entity.Event {
	return &entity.Event{
		ID:    raw.ID,
		Name:  raw.Name,
		Date:  raw.Dates.Start.LocalDate,
		Time:  raw.Dates.Start.LocalTime,
		Genre: pickGenre(raw),
		Price: pickPrice(raw),
		Image: pickImage(raw),
		Venue: pickVenue(raw),
		URL:   raw.URL,
	}
}

// pickImage selects the first 16:9 image, preferring one at least card width.
// Records without any 16:9 image get a nil URL with placeholder dimensions.
func pickImage(raw *rawEvent) entity.EventImage {
	fallback := -1
	for i, img := range raw.Images {
		if img.Ratio != "16_9" {
			continue
		}
		if img.Width >= placeholderWidth {
			url := img.URL

			return entity.EventImage{URL: &url, Width: img.Width, Height: img.Height}
		}
		if fallback < 0 {
			fallback = i
		}
	}

	if fallback >= 0 {
		img := raw.Images[fallback]
		url := img.URL

		return entity.EventImage{URL: &url, Width: img.Width, Height: img.Height}
	}

	return entity.EventImage{Width: placeholderWidth, Height: placeholderHeight}
}

// pickPrice takes the minimum of the first price range. Most records carry a
// single range; additional ranges are resale tiers and are ignored.
func pickPrice(raw *rawEvent) string {
	if len(raw.PriceRanges) == 0 {
		return "N/A"
	}

	pr := raw.PriceRanges[0]
	price := strconv.FormatFloat(pr.Min, 'f', 2, 64)
	if pr.Currency != "" {
		price += " " + pr.Currency
	}

	return price
}

func pickGenre(raw *rawEvent) string {
	if len(raw.Classifications) == 0 {
		return ""
	}

	c := raw.Classifications[0]
	if c.Genre.Name != "" && c.Genre.Name != "Undefined" {
		return c.Genre.Name
	}

	return c.Segment.Name
}

// pickVenue flattens the first embedded venue. Coordinates parse to zero on
// malformed input, which downstream treats as missing.
func pickVenue(raw *rawEvent) entity.Venue {
	if raw.Embedded == nil || len(raw.Embedded.Venues) == 0 {
		return entity.Venue{}
	}

	v := raw.Embedded.Venues[0]
	lat, _ := strconv.ParseFloat(v.Location.Latitude, 64)
	lng, _ := strconv.ParseFloat(v.Location.Longitude, 64)

	return entity.Venue{
		Name: v.Name,
		Address: entity.VenueAddress{
			Line1:      v.Address.Line1,
			City:       v.City.Name,
			PostalCode: v.PostalCode,
			Country:    v.Country.Name,
		},
		Latitude:  lat,
		Longitude: lng,
	}
}
