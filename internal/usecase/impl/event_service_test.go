package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"happnings/config"
	"happnings/internal/domain/entity"
	domainerrors "happnings/internal/domain/errors"
	"happnings/internal/domain/service"
	"happnings/internal/infra/ticketing"
	mockService "happnings/internal/mocks/service"
	"happnings/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// eventServiceFixtures holds all test dependencies for event service tests.
type eventServiceFixtures struct {
	service  *eventService
	provider *mockService.MockTicketingProvider
	geocoder *mockService.MockGeocoder
	cache    *mockService.MockCache
	qr       *mockService.MockQRCodeService
}

func createTestEventService(t *testing.T) eventServiceFixtures {
	t.Helper()

	provider := mockService.NewMockTicketingProvider(t)
	geocoder := mockService.NewMockGeocoder(t)
	cache := mockService.NewMockCache(t)
	qr := mockService.NewMockQRCodeService(t)

	cfg := &config.Config{}
	svc := NewEventService(cfg, newTestLogger(), provider, geocoder, cache, qr).(*eventService)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	}

	return eventServiceFixtures{
		service:  svc,
		provider: provider,
		geocoder: geocoder,
		cache:    cache,
		qr:       qr,
	}
}

func floatPtr(v float64) *float64 { return &v }

// expectMiss makes every cache lookup a miss and accepts any write.
func expectMiss(fx eventServiceFixtures) {
	fx.cache.EXPECT().Get(mock.Anything, mock.AnythingOfType("string")).Return(nil, false).Maybe()
	fx.cache.EXPECT().Set(mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).Maybe()
}

func TestEventService_SearchEvents_RadiusConversion(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	expectMiss(fx)

	var captured *service.EventQuery
	fx.provider.EXPECT().
		SearchEvents(ctx, mock.AnythingOfType("*service.EventQuery")).
		Run(func(_ context.Context, query *service.EventQuery) {
			captured = query
		}).
		Return([]*entity.Event{}, nil)

	_, err := fx.service.SearchEvents(ctx, &usecase.EventSearchParams{
		Latitude:  floatPtr(55.6761),
		Longitude: floatPtr(12.5683),
		RadiusKm:  floatPtr(50),
	})
	require.NoError(t, err)
	require.NotNil(t, captured)

	// floor(50 / 1.609344) = 31
	assert.Equal(t, 31, captured.RadiusMiles)
}

func TestEventService_SearchEvents_RadiusCeiling(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	// No provider or cache expectations: a radius above the ceiling must be
	// rejected before any call leaves the service.
	_, err := fx.service.SearchEvents(ctx, &usecase.EventSearchParams{
		Latitude:  floatPtr(55.6761),
		Longitude: floatPtr(12.5683),
		RadiusKm:  floatPtr(40000),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRadiusTooLarge)
	assert.Equal(t, "Radius cannot exceed 19,999 miles", domainerrors.ErrRadiusTooLarge.Message())
}

func TestEventService_SearchEvents_SameDayPreset(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	expectMiss(fx)

	var captured *service.EventQuery
	fx.provider.EXPECT().
		SearchEvents(ctx, mock.AnythingOfType("*service.EventQuery")).
		Run(func(_ context.Context, query *service.EventQuery) { captured = query }).
		Return([]*entity.Event{}, nil)

	_, err := fx.service.SearchEvents(ctx, &usecase.EventSearchParams{
		Latitude:   floatPtr(55.6761),
		Longitude:  floatPtr(12.5683),
		DatePreset: usecase.DatePresetSameDay,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-29T00:00:00Z", captured.StartDateTime)
	assert.Equal(t, "2026-08-29T23:59:59Z", captured.EndDateTime)
}

func TestEventService_SearchEvents_SameDayFollowsWallClockDate(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	expectMiss(fx)

	// 2026-08-30 01:00 in UTC+10 is still 2026-08-29 in UTC.
	fx.service.now = func() time.Time {
		return time.Date(2026, 8, 30, 1, 0, 0, 0, time.FixedZone("UTC+10", 10*3600))
	}

	var captured *service.EventQuery
	fx.provider.EXPECT().
		SearchEvents(ctx, mock.AnythingOfType("*service.EventQuery")).
		Run(func(_ context.Context, query *service.EventQuery) { captured = query }).
		Return([]*entity.Event{}, nil)

	_, err := fx.service.SearchEvents(ctx, &usecase.EventSearchParams{
		Latitude:   floatPtr(55.6761),
		Longitude:  floatPtr(12.5683),
		DatePreset: usecase.DatePresetSameDay,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-30T00:00:00Z", captured.StartDateTime)
	assert.Equal(t, "2026-08-30T23:59:59Z", captured.EndDateTime)
}

func TestEventService_SearchEvents_UpcomingPreset(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	expectMiss(fx)

	var captured *service.EventQuery
	fx.provider.EXPECT().
		SearchEvents(ctx, mock.AnythingOfType("*service.EventQuery")).
		Run(func(_ context.Context, query *service.EventQuery) { captured = query }).
		Return([]*entity.Event{}, nil)

	_, err := fx.service.SearchEvents(ctx, &usecase.EventSearchParams{
		Latitude:   floatPtr(55.6761),
		Longitude:  floatPtr(12.5683),
		DatePreset: usecase.DatePresetUpcoming,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-30T00:00:00Z", captured.StartDateTime, "window opens at start of tomorrow")
	assert.Equal(t, "2026-09-06T23:59:59Z", captured.EndDateTime, "window closes 7 days after tomorrow")
}

func TestEventService_SearchEvents_ExplicitDatesBeatPreset(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	expectMiss(fx)

	var captured *service.EventQuery
	fx.provider.EXPECT().
		SearchEvents(ctx, mock.AnythingOfType("*service.EventQuery")).
		Run(func(_ context.Context, query *service.EventQuery) { captured = query }).
		Return([]*entity.Event{}, nil)

	_, err := fx.service.SearchEvents(ctx, &usecase.EventSearchParams{
		Latitude:   floatPtr(55.6761),
		Longitude:  floatPtr(12.5683),
		StartDate:  "2026-09-10",
		EndDate:    "2026-09-12",
		DatePreset: usecase.DatePresetSameDay,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-09-10T00:00:00Z", captured.StartDateTime)
	assert.Equal(t, "2026-09-12T23:59:59Z", captured.EndDateTime)
}

func TestEventService_SearchEvents_CategoriesBeatSearchText(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	expectMiss(fx)

	taxonomy := []*service.Classification{
		{Segment: entity.Category{ID: "seg-music", Name: "Music"}},
		{Segment: entity.Category{ID: "seg-sports", Name: "Sports"}},
	}
	fx.provider.EXPECT().ListClassifications(ctx).Return(taxonomy, nil)

	var captured *service.EventQuery
	fx.provider.EXPECT().
		SearchEvents(ctx, mock.AnythingOfType("*service.EventQuery")).
		Run(func(_ context.Context, query *service.EventQuery) { captured = query }).
		Return([]*entity.Event{}, nil)

	// The geocoder mock has no expectations: free text must be ignored when
	// categories are present.
	_, err := fx.service.SearchEvents(ctx, &usecase.EventSearchParams{
		Latitude:   floatPtr(55.6761),
		Longitude:  floatPtr(12.5683),
		Categories: []string{"music"},
		SearchText: "Copenhagen",
	})
	require.NoError(t, err)

	assert.Equal(t, "seg-music", captured.ClassificationID)
	assert.Empty(t, captured.Keyword)
}

func TestEventService_SearchEvents_SearchTextGeocodes(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	expectMiss(fx)

	fx.geocoder.EXPECT().
		Geocode(ctx, "Copenhagen, Denmark").
		Return(entity.Coordinates{Lat: 55.6761, Lng: 12.5683}, nil)

	var captured *service.EventQuery
	fx.provider.EXPECT().
		SearchEvents(ctx, mock.AnythingOfType("*service.EventQuery")).
		Run(func(_ context.Context, query *service.EventQuery) { captured = query }).
		Return([]*entity.Event{}, nil)

	_, err := fx.service.SearchEvents(ctx, &usecase.EventSearchParams{
		SearchText: "Copenhagen, Denmark",
	})
	require.NoError(t, err)

	assert.InDelta(t, 55.6761, captured.Latitude, 1e-9)
	assert.InDelta(t, 12.5683, captured.Longitude, 1e-9)
	assert.Empty(t, captured.Keyword)
}

func TestEventService_SearchEvents_SearchTextFallsBackToKeyword(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	expectMiss(fx)

	fx.geocoder.EXPECT().
		Geocode(ctx, "jazz night").
		Return(entity.Coordinates{}, domainerrors.ErrAddressNotFound)

	var captured *service.EventQuery
	fx.provider.EXPECT().
		SearchEvents(ctx, mock.AnythingOfType("*service.EventQuery")).
		Run(func(_ context.Context, query *service.EventQuery) { captured = query }).
		Return([]*entity.Event{}, nil)

	_, err := fx.service.SearchEvents(ctx, &usecase.EventSearchParams{
		SearchText: "jazz night",
	})
	require.NoError(t, err)

	assert.Equal(t, "jazz night", captured.Keyword)
	assert.Zero(t, captured.Latitude)
	assert.Zero(t, captured.Longitude)
}

func TestEventService_SearchEvents_MissingCoordinates(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	_, err := fx.service.SearchEvents(ctx, &usecase.EventSearchParams{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMissingCoordinates)
}

func TestEventService_SearchEvents_CacheHit(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	cached := []*entity.Event{{ID: "ev-1", Name: "Cached Event"}}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	// The provider mock has no expectations: a fresh cache entry answers the
	// query without an upstream call.
	fx.cache.EXPECT().
		Get(ctx, mock.AnythingOfType("string")).
		Return(payload, true)

	events, err := fx.service.SearchEvents(ctx, &usecase.EventSearchParams{
		Latitude:  floatPtr(55.6761),
		Longitude: floatPtr(12.5683),
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "ev-1", events[0].ID)
}

func TestEventService_SearchEvents_CacheKeyIsDeterministic(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	var keys []string
	fx.cache.EXPECT().
		Get(ctx, mock.AnythingOfType("string")).
		Run(func(_ context.Context, key string) { keys = append(keys, key) }).
		Return(nil, false).
		Twice()
	fx.cache.EXPECT().Set(ctx, mock.AnythingOfType("string"), mock.Anything, mock.Anything).Twice()

	fx.provider.EXPECT().
		SearchEvents(ctx, mock.AnythingOfType("*service.EventQuery")).
		Return([]*entity.Event{}, nil).
		Twice()

	params := &usecase.EventSearchParams{
		Latitude:  floatPtr(55.6761),
		Longitude: floatPtr(12.5683),
		RadiusKm:  floatPtr(50),
	}
	_, err := fx.service.SearchEvents(ctx, params)
	require.NoError(t, err)
	_, err = fx.service.SearchEvents(ctx, params)
	require.NoError(t, err)

	require.Len(t, keys, 2)
	assert.Equal(t, keys[0], keys[1], "identical params must produce identical cache keys")
}

func TestEventService_SearchEvents_AnnotatesDistance(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	expectMiss(fx)

	fx.provider.EXPECT().
		SearchEvents(ctx, mock.AnythingOfType("*service.EventQuery")).
		Return([]*entity.Event{
			{ID: "near", Venue: entity.Venue{Latitude: 55.6761, Longitude: 12.5683}},
			{ID: "no-coords"},
		}, nil)

	events, err := fx.service.SearchEvents(ctx, &usecase.EventSearchParams{
		Latitude:  floatPtr(55.6761),
		Longitude: floatPtr(12.5683),
	})
	require.NoError(t, err)
	require.Len(t, events, 2)

	require.NotNil(t, events[0].DistanceKm)
	assert.InDelta(t, 0, *events[0].DistanceKm, 0.1)
	assert.Nil(t, events[1].DistanceKm, "venues without coordinates stay unannotated")
}

func TestEventService_SearchEvents_UpstreamFailure(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	fx.cache.EXPECT().Get(ctx, mock.AnythingOfType("string")).Return(nil, false)

	fx.provider.EXPECT().
		SearchEvents(ctx, mock.AnythingOfType("*service.EventQuery")).
		Return(nil, errors.New("upstream exploded"))

	_, err := fx.service.SearchEvents(ctx, &usecase.EventSearchParams{
		Latitude:  floatPtr(55.6761),
		Longitude: floatPtr(12.5683),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "upstream exploded")
}

func TestEventService_GetEventByID_NotFound(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	fx.cache.EXPECT().Get(ctx, "event:missing").Return(nil, false)

	fx.provider.EXPECT().
		GetEventByID(ctx, "missing").
		Return(nil, errors.Wrap(ticketing.ErrNotFound, "GET /events/missing"))

	_, err := fx.service.GetEventByID(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestEventService_GetEventShareQR(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	event := &entity.Event{ID: "ev-1", URL: "https://tickets.example/ev-1"}
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	fx.cache.EXPECT().Get(ctx, "event:ev-1").Return(payload, true)

	fx.qr.EXPECT().
		GenerateEventQR("https://tickets.example/ev-1").
		Return([]byte("png-bytes"), nil)

	png, err := fx.service.GetEventShareQR(ctx, "ev-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestEventService_ListCategories(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	expectMiss(fx)

	taxonomy := []*service.Classification{
		{Segment: entity.Category{ID: "seg-misc", Name: "Miscellaneous"}},
		{Segment: entity.Category{ID: "seg-music", Name: "Music"}},
		{Segment: entity.Category{ID: "seg-undef", Name: "Undefined"}},
		{Segment: entity.Category{ID: "", Name: ""}},
		{Segment: entity.Category{ID: "seg-sports", Name: "Sports"}},
	}
	fx.provider.EXPECT().ListClassifications(ctx).Return(taxonomy, nil)

	categories, err := fx.service.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)

	assert.Equal(t, "Music", categories[0].Name)
	assert.Equal(t, "Sports", categories[1].Name)
	assert.Equal(t, "Miscellaneous", categories[2].Name, "Miscellaneous sorts last")
}

func TestEventService_ListCategories_CachedTaxonomySkipsUpstream(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	taxonomy := []*service.Classification{
		{Segment: entity.Category{ID: "seg-music", Name: "Music"}},
	}
	payload, err := json.Marshal(taxonomy)
	require.NoError(t, err)
	fx.cache.EXPECT().Get(ctx, categoryCacheKey).Return(payload, true)

	categories, err := fx.service.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Music", categories[0].Name)
}

func TestEventService_ResetCategoryCache(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Delete(ctx, categoryCacheKey)

	fx.service.ResetCategoryCache(ctx)
}
