// Package entity contains the core business objects of the project.
package entity

// Coordinates is a geographic point in WGS84.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EventImage is the display image selected for an event.
// URL is nil when the provider record carries no usable image; Width and
// Height then hold the placeholder dimensions.
type EventImage struct {
	URL    *string `json:"url"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
}

// VenueAddress is the formatted address of an event venue. Fields are empty
// when the provider record lacks venue information.
type VenueAddress struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Venue is the first venue attached to an event record.
type Venue struct {
	Name      string       `json:"name"`
	Address   VenueAddress `json:"address"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
}

// Event is the stable projection of an upstream provider event record,
// used both for search result summaries and single-event detail.
type Event struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Date  string `json:"date"` // Local event date, YYYY-MM-DD.
	Time  string `json:"time"` // Local start time, HH:MM:SS; empty when TBA.
	Genre string `json:"genre"`

	// Price is the minimum of the first price range, formatted with its
	// currency, or "N/A" when the record has no price ranges.
	Price string `json:"price"`

	Image EventImage `json:"image"`
	Venue Venue      `json:"venue"`

	// URL is the external ticketing page for the event.
	URL string `json:"url"`

	// DistanceKm is the great-circle distance from the search origin to the
	// venue. Nil when the search was not geographic or the venue has no
	// coordinates.
	DistanceKm *float64 `json:"distance_km,omitempty"`
}
