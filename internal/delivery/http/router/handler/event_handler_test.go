package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"happnings/internal/domain/entity"
	mockUsecase "happnings/internal/mocks/usecase"
	"happnings/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newEventHandler(t *testing.T) (*EventHandler, *mockUsecase.MockEventUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockEventUsecase(t)

	return NewEventHandler(uc, newDiscardLogger()), uc
}

func TestEventHandler_SearchEvents_ParsesQueryParams(t *testing.T) {
	h, uc := newEventHandler(t)
	c, rec := newTestContext(t, "/api/events?latitude=55.6761&longitude=12.5683&radius=50&startDate=2026-09-10&endDate=2026-09-12&categories=Music,Sports&search=Copenhagen")

	var captured *usecase.EventSearchParams
	uc.EXPECT().
		SearchEvents(mock.Anything, mock.AnythingOfType("*usecase.EventSearchParams")).
		Run(func(_ context.Context, params *usecase.EventSearchParams) {
			captured = params
		}).
		Return([]*entity.Event{}, nil)

	require.NoError(t, h.SearchEvents(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, captured)
	require.NotNil(t, captured.Latitude)
	assert.InDelta(t, 55.6761, *captured.Latitude, 1e-9)
	require.NotNil(t, captured.RadiusKm)
	assert.InDelta(t, 50, *captured.RadiusKm, 1e-9)
	assert.Equal(t, "2026-09-10", captured.StartDate)
	assert.Equal(t, "2026-09-12", captured.EndDate)
	assert.Equal(t, []string{"Music", "Sports"}, captured.Categories)
	assert.Equal(t, "Copenhagen", captured.SearchText)
}

func TestEventHandler_SearchEvents_ConvertsMilesToKm(t *testing.T) {
	h, uc := newEventHandler(t)
	c, _ := newTestContext(t, "/api/events?latitude=55.6761&longitude=12.5683&radius=31&unit=miles")

	var captured *usecase.EventSearchParams
	uc.EXPECT().
		SearchEvents(mock.Anything, mock.AnythingOfType("*usecase.EventSearchParams")).
		Run(func(_ context.Context, params *usecase.EventSearchParams) {
			captured = params
		}).
		Return([]*entity.Event{}, nil)

	require.NoError(t, h.SearchEvents(c))

	require.NotNil(t, captured.RadiusKm)
	assert.InDelta(t, 31*kmPerMile, *captured.RadiusKm, 1e-9)
}

func TestEventHandler_SearchEvents_RejectsMalformedRadius(t *testing.T) {
	h, _ := newEventHandler(t)
	c, _ := newTestContext(t, "/api/events?latitude=55.6761&longitude=12.5683&radius=wide")

	err := h.SearchEvents(c)
	require.Error(t, err)
}

func TestEventHandler_GetEventQR_ReturnsPNG(t *testing.T) {
	h, uc := newEventHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/events/ev-1/qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ev-1")

	uc.EXPECT().GetEventShareQR(mock.Anything, "ev-1").Return([]byte("png-bytes"), nil)

	require.NoError(t, h.GetEventQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())
}
