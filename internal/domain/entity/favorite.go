package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite associates a user with an event, carrying a denormalized snapshot
// of the event's display fields taken at creation time so listing favorites
// never requires a second upstream call.
type Favorite struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	EventID   string    `json:"event_id"` // Provider event identifier.
	Title     string    `json:"title"`
	EventDate string    `json:"event_date"` // YYYY-MM-DD at snapshot time.
	Price     string    `json:"price"`
	VenueName string    `json:"venue_name"`
	Address   string    `json:"address"`
	ImageURL  string    `json:"image_url"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
