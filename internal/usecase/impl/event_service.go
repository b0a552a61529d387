// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"happnings/config"
	"happnings/internal/domain/entity"
	domainerrors "happnings/internal/domain/errors"
	"happnings/internal/domain/service"
	"happnings/internal/errors"
	"happnings/internal/infra/ticketing"
	"happnings/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	kmPerMile = 1.609344

	// The discovery API rejects any radius above this many miles.
	maxRadiusMiles = 19999

	defaultRadiusMiles = 31
	defaultPageSize    = 20

	defaultEventTTL    = 100 * time.Second
	defaultCategoryTTL = 24 * time.Hour

	categoryCacheKey = "categories:taxonomy"
)

type eventService struct {
	provider service.TicketingProvider
	geocoder service.Geocoder
	cache    service.Cache
	qr       service.QRCodeService
	logger   *slog.Logger

	defaultRadius int
	pageSize      int
	eventTTL      time.Duration
	categoryTTL   time.Duration

	now func() time.Time
}

// NewEventService creates a new event discovery service instance
func NewEventService(
	cfg *config.Config,
	logger *slog.Logger,
	provider service.TicketingProvider,
	geocoder service.Geocoder,
	cache service.Cache,
	qr service.QRCodeService,
) usecase.EventUsecase {
	svc := &eventService{
		provider:      provider,
		geocoder:      geocoder,
		cache:         cache,
		qr:            qr,
		logger:        logger,
		defaultRadius: defaultRadiusMiles,
		pageSize:      defaultPageSize,
		eventTTL:      defaultEventTTL,
		categoryTTL:   defaultCategoryTTL,
		now:           time.Now,
	}

	if cfg.Ticketing != nil {
		if cfg.Ticketing.DefaultRadiusMiles > 0 {
			svc.defaultRadius = cfg.Ticketing.DefaultRadiusMiles
		}
		if cfg.Ticketing.PageSize > 0 {
			svc.pageSize = cfg.Ticketing.PageSize
		}
	}
	if cfg.Cache != nil {
		if cfg.Cache.EventTTL > 0 {
			svc.eventTTL = cfg.Cache.EventTTL
		}
		if cfg.Cache.CategoryTTL > 0 {
			svc.categoryTTL = cfg.Cache.CategoryTTL
		}
	}

	return svc
}

// SearchEvents resolves the raw search intent into one provider query.
// Resolution order: explicit dates beat the date preset, categories beat free
// text, and free text is a place search before it is a keyword search.
func (s *eventService) SearchEvents(ctx context.Context, params *usecase.EventSearchParams) ([]*entity.Event, error) {
	query, err := s.buildQuery(ctx, params)
	if err != nil {
		return nil, err
	}

	key := query.CacheKey()
	if cached, ok := s.cache.Get(ctx, key); ok {
		var events []*entity.Event
		if err := json.Unmarshal(cached, &events); err == nil {
			return events, nil
		}
		// A corrupt entry falls through to a fresh fetch.
		s.cache.Delete(ctx, key)
	}

	events, err := s.provider.SearchEvents(ctx, query)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(err, "Event search failed")
	}

	s.annotateDistances(events, query)

	if payload, err := json.Marshal(events); err == nil {
		s.cache.Set(ctx, key, payload, s.eventTTL)
	}

	return events, nil
}

func (s *eventService) buildQuery(ctx context.Context, params *usecase.EventSearchParams) (*service.EventQuery, error) {
	query := &service.EventQuery{PageSize: s.pageSize}

	radius, err := s.resolveRadius(params.RadiusKm)
	if err != nil {
		return nil, err
	}
	query.RadiusMiles = radius

	if err := s.resolveDates(params, query); err != nil {
		return nil, err
	}

	lat, lng, haveCoords := coordsFromParams(params)

	if len(params.Categories) > 0 {
		ids, err := s.resolveClassificationIDs(ctx, params.Categories)
		if err != nil {
			return nil, err
		}
		query.ClassificationID = ids
	} else if params.SearchText != "" {
		coords, err := s.geocoder.Geocode(ctx, params.SearchText)
		switch {
		case err == nil:
			lat, lng, haveCoords = coords.Lat, coords.Lng, true
		case errors.Is(err, domainerrors.ErrAddressNotFound):
			// Not a place; search it as a keyword instead.
			query.Keyword = params.SearchText
		default:
			return nil, domainerrors.NewUpstreamError(err, "Geocoding failed")
		}
	}

	if haveCoords {
		query.Latitude = lat
		query.Longitude = lng
	} else if query.Keyword == "" {
		return nil, domainerrors.ErrMissingCoordinates
	}

	return query, nil
}

// resolveRadius converts kilometers to whole provider miles, truncating. The
// ceiling is enforced before any upstream call is made.
func (s *eventService) resolveRadius(radiusKm *float64) (int, error) {
	if radiusKm == nil {
		return s.defaultRadius, nil
	}

	miles := int(math.Floor(*radiusKm / kmPerMile))
	if miles > maxRadiusMiles {
		return 0, domainerrors.ErrRadiusTooLarge
	}
	if miles < 1 {
		miles = 1
	}

	return miles, nil
}

func (s *eventService) resolveDates(params *usecase.EventSearchParams, query *service.EventQuery) error {
	if params.StartDate != "" {
		start, err := time.Parse("2006-01-02", params.StartDate)
		if err != nil {
			return domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_DATE", "Invalid start date", params.StartDate)
		}
		end := start
		if params.EndDate != "" {
			end, err = time.Parse("2006-01-02", params.EndDate)
			if err != nil {
				return domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_DATE", "Invalid end date", params.EndDate)
			}
		}

		query.StartDateTime = start.Format("2006-01-02") + "T00:00:00Z"
		query.EndDateTime = end.Format("2006-01-02") + "T23:59:59Z"

		return nil
	}

	switch params.DatePreset {
	case usecase.DatePresetSameDay:
		// Presets are computed from the server's wall-clock date.
		today := s.now().Format("2006-01-02")
		query.StartDateTime = today + "T00:00:00Z"
		query.EndDateTime = today + "T23:59:59Z"
	case usecase.DatePresetUpcoming:
		tomorrow := s.now().AddDate(0, 0, 1)
		query.StartDateTime = tomorrow.Format("2006-01-02") + "T00:00:00Z"
		query.EndDateTime = tomorrow.AddDate(0, 0, 7).Format("2006-01-02") + "T23:59:59Z"
	case "":
	default:
		return domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_DATE_PRESET", "Unknown date preset", params.DatePreset)
	}

	return nil
}

func coordsFromParams(params *usecase.EventSearchParams) (float64, float64, bool) {
	if params.Latitude == nil || params.Longitude == nil {
		return 0, 0, false
	}

	return *params.Latitude, *params.Longitude, true
}

// annotateDistances fills DistanceKm from the search origin for venues that
// carry coordinates.
func (s *eventService) annotateDistances(events []*entity.Event, query *service.EventQuery) {
	if query.Latitude == 0 && query.Longitude == 0 {
		return
	}

	origin := orb.Point{query.Longitude, query.Latitude}
	for _, event := range events {
		if event.Venue.Latitude == 0 && event.Venue.Longitude == 0 {
			continue
		}

		km := geo.Distance(origin, orb.Point{event.Venue.Longitude, event.Venue.Latitude}) / 1000
		km = math.Round(km*10) / 10
		event.DistanceKm = &km
	}
}

// GetEventByID retrieves a single event's details, cached per event.
func (s *eventService) GetEventByID(ctx context.Context, id string) (*entity.Event, error) {
	key := "event:" + id
	if cached, ok := s.cache.Get(ctx, key); ok {
		var event entity.Event
		if err := json.Unmarshal(cached, &event); err == nil {
			return &event, nil
		}
		s.cache.Delete(ctx, key)
	}

	event, err := s.provider.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, ticketing.ErrNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, domainerrors.NewUpstreamError(err, "Event lookup failed")
	}

	if payload, err := json.Marshal(event); err == nil {
		s.cache.Set(ctx, key, payload, s.eventTTL)
	}

	return event, nil
}

// GetEventShareQR renders the event's ticketing page URL as a QR code PNG.
func (s *eventService) GetEventShareQR(ctx context.Context, id string) ([]byte, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.URL == "" {
		return nil, domainerrors.ErrEventNotFound
	}

	png, err := s.qr.GenerateEventQR(event.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate event qr: %w", err)
	}

	return png, nil
}

// ListCategories returns the curated top-level category list: segments with
// usable names, with "Miscellaneous" always sorted last.
func (s *eventService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	classifications, err := s.classifications(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, 0, len(classifications))
	var miscellaneous *entity.Category
	seen := make(map[string]bool)

	for _, classification := range classifications {
		segment := classification.Segment
		if segment.Name == "" || segment.Name == "Undefined" || seen[segment.ID] {
			continue
		}
		seen[segment.ID] = true

		category := &entity.Category{ID: segment.ID, Name: segment.Name}
		if segment.Name == "Miscellaneous" {
			miscellaneous = category

			continue
		}
		categories = append(categories, category)
	}

	if miscellaneous != nil {
		categories = append(categories, miscellaneous)
	}

	return categories, nil
}

// ResetCategoryCache drops the cached taxonomy.
func (s *eventService) ResetCategoryCache(ctx context.Context) {
	s.cache.Delete(ctx, categoryCacheKey)
}

// classifications returns the provider taxonomy, cached under the long
// category TTL since it changes rarely.
func (s *eventService) classifications(ctx context.Context) ([]*service.Classification, error) {
	if cached, ok := s.cache.Get(ctx, categoryCacheKey); ok {
		var classifications []*service.Classification
		if err := json.Unmarshal(cached, &classifications); err == nil {
			return classifications, nil
		}
		s.cache.Delete(ctx, categoryCacheKey)
	}

	classifications, err := s.provider.ListClassifications(ctx)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(err, "Category fetch failed")
	}

	if payload, err := json.Marshal(classifications); err == nil {
		s.cache.Set(ctx, categoryCacheKey, payload, s.categoryTTL)
	}

	return classifications, nil
}

// resolveClassificationIDs maps category names (segment or genre, case
// insensitive) to provider classification ids. Unknown names are ignored.
func (s *eventService) resolveClassificationIDs(ctx context.Context, names []string) (string, error) {
	classifications, err := s.classifications(ctx)
	if err != nil {
		return "", err
	}

	var ids []string
	for _, name := range names {
		needle := strings.ToLower(strings.TrimSpace(name))
		if needle == "" {
			continue
		}

		for _, classification := range classifications {
			if strings.ToLower(classification.Segment.Name) == needle {
				ids = append(ids, classification.Segment.ID)

				continue
			}
			for _, genre := range classification.Genres {
				if strings.ToLower(genre.Name) == needle {
					ids = append(ids, genre.ID)
				}
			}
		}
	}

	return strings.Join(ids, ","), nil
}
