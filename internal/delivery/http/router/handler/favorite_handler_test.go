package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "happnings/internal/delivery/context"
	httpvalidator "happnings/internal/delivery/http/validator"
	"happnings/internal/domain/entity"
	mockUsecase "happnings/internal/mocks/usecase"
	"happnings/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = httpvalidator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestFavoriteHandler_AddFavorite_Success(t *testing.T) {
	uc := mockUsecase.NewMockFavoriteUsecase(t)
	h := NewFavoriteHandler(uc, newDiscardLogger())

	userID := uuid.New()
	c, rec := newJSONContext(t, http.MethodPost, "/api/favorites",
		`{"event_id":"ev-1","title":"Roskilde Festival","venue_name":"Dyrskuepladsen"}`)
	deliverycontext.SetUserID(c, userID)

	uc.EXPECT().
		AddFavorite(c.Request().Context(), userID, &usecase.FavoriteInput{
			EventID:   "ev-1",
			Title:     "Roskilde Festival",
			VenueName: "Dyrskuepladsen",
		}).
		Return(&entity.Favorite{EventID: "ev-1", Title: "Roskilde Festival"}, nil)

	require.NoError(t, h.AddFavorite(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Roskilde Festival")
}

func TestFavoriteHandler_AddFavorite_MissingTitle(t *testing.T) {
	uc := mockUsecase.NewMockFavoriteUsecase(t)
	h := NewFavoriteHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/api/favorites", `{"event_id":"ev-1"}`)
	deliverycontext.SetUserID(c, uuid.New())

	require.NoError(t, h.AddFavorite(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestFavoriteHandler_AddFavorite_Unauthenticated(t *testing.T) {
	uc := mockUsecase.NewMockFavoriteUsecase(t)
	h := NewFavoriteHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/api/favorites", `{"event_id":"ev-1","title":"x"}`)

	require.NoError(t, h.AddFavorite(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFavoriteHandler_RemoveFavorite(t *testing.T) {
	uc := mockUsecase.NewMockFavoriteUsecase(t)
	h := NewFavoriteHandler(uc, newDiscardLogger())

	userID := uuid.New()
	c, rec := newJSONContext(t, http.MethodDelete, "/api/favorites/ev-1", "")
	c.SetParamNames("id")
	c.SetParamValues("ev-1")
	deliverycontext.SetUserID(c, userID)

	uc.EXPECT().RemoveFavorite(c.Request().Context(), userID, "ev-1").Return(nil)

	require.NoError(t, h.RemoveFavorite(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
