// Package service defines interfaces for core, stateless domain logic and
// for the external collaborators the use cases depend on.
package service

import (
	"context"
	"strconv"
	"strings"

	"happnings/internal/domain/entity"
)

// EventQuery is the normalized intent of an event search, ready to be mapped
// to the ticketing provider's query parameters. Radius is always in miles,
// already truncated and validated against the provider ceiling.
type EventQuery struct {
	Latitude    float64
	Longitude   float64
	RadiusMiles int

	// ISO-8601 UTC instants bounding the search window.
	StartDateTime string
	EndDateTime   string

	// ClassificationID is a comma-joined list of provider classification ids.
	ClassificationID string

	// Keyword is a free-text search term; set only when the query is not
	// classification-driven.
	Keyword string

	PageSize int
}

// CacheKey is the deterministic concatenation of all query fields in a fixed
// order. Two queries with equal keys are interchangeable for caching.
func (q *EventQuery) CacheKey() string {
	parts := []string{
		strconv.FormatFloat(q.Latitude, 'f', -1, 64),
		strconv.FormatFloat(q.Longitude, 'f', -1, 64),
		strconv.Itoa(q.RadiusMiles),
		q.StartDateTime,
		q.EndDateTime,
		q.ClassificationID,
		q.Keyword,
	}

	return "events:" + strings.Join(parts, "|")
}

// Classification is one top-level segment of the provider taxonomy together
// with its genres.
type Classification struct {
	Segment entity.Category
	Genres  []entity.Category
}

// TicketingProvider is the client for the ticketing discovery API.
type TicketingProvider interface {
	// SearchEvents runs an event search and returns formatted summaries.
	SearchEvents(ctx context.Context, query *EventQuery) ([]*entity.Event, error)

	// GetEventByID fetches and formats a single event record.
	GetEventByID(ctx context.Context, id string) (*entity.Event, error)

	// ListClassifications fetches the full classification tree.
	ListClassifications(ctx context.Context) ([]*Classification, error)
}
