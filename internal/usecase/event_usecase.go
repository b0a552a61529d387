// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"happnings/internal/domain/entity"
)

// Date presets supported by event search. A preset is ignored when explicit
// dates are given.
const (
	DatePresetSameDay  = "sameDay"
	DatePresetUpcoming = "upcoming"
)

// EventSearchParams carries the raw search intent as the client sent it.
// Radius arrives in kilometers and is normalized to provider miles inside the
// use case.
type EventSearchParams struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64

	// Explicit local dates, YYYY-MM-DD. When set they win over DatePreset.
	StartDate string
	EndDate   string

	// DatePreset is "sameDay" or "upcoming".
	DatePreset string

	// Categories are segment names to filter by. When set, SearchText is
	// ignored.
	Categories []string

	// SearchText is a free-text place or keyword search. It is geocoded
	// first; only an unresolvable address falls back to a keyword search.
	SearchText string
}

// EventUsecase defines the interface for event discovery use cases
type EventUsecase interface {
	// SearchEvents resolves the search intent into a provider query and
	// returns formatted events, served from cache when the same query was
	// answered recently.
	SearchEvents(ctx context.Context, params *EventSearchParams) ([]*entity.Event, error)

	// GetEventByID retrieves a single event's details.
	GetEventByID(ctx context.Context, id string) (*entity.Event, error)

	// GetEventShareQR renders the event's ticketing page URL as a QR code PNG.
	GetEventShareQR(ctx context.Context, id string) ([]byte, error)

	// ListCategories returns the curated top-level category list.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ResetCategoryCache drops the cached category taxonomy so the next
	// ListCategories refetches it.
	ResetCategoryCache(ctx context.Context)
}
