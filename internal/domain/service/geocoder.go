package service

import (
	"context"

	"happnings/internal/domain/entity"
)

// Geocoder resolves a free-text address to geographic coordinates.
type Geocoder interface {
	// Geocode returns the coordinates of the first geocoding result.
	// Returns domain ErrAddressNotFound when the address yields no results.
	Geocode(ctx context.Context, address string) (entity.Coordinates, error)
}
