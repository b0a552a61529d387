package handler

import (
	"net/http"
	"testing"

	deliverycontext "happnings/internal/delivery/context"
	"happnings/internal/domain/entity"
	mockUsecase "happnings/internal/mocks/usecase"
	"happnings/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Register_Success(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/api/users/register",
		`{"email":"kasper@example.com","password":"hunter2hunter2","name":"Kasper"}`)

	uc.EXPECT().
		Register(c.Request().Context(), "kasper@example.com", "hunter2hunter2", "Kasper").
		Return(
			&entity.User{ID: uuid.New(), Email: "kasper@example.com", Name: "Kasper"},
			&usecase.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"},
			nil,
		)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "access-token")
	assert.Contains(t, rec.Body.String(), "kasper@example.com")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Register_PasswordTooShort(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/api/users/register",
		`{"email":"kasper@example.com","password":"short","name":"Kasper"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUserHandler_Login_Success(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/api/users/login",
		`{"email":"kasper@example.com","password":"hunter2hunter2"}`)

	uc.EXPECT().
		Login(c.Request().Context(), "kasper@example.com", "hunter2hunter2").
		Return(
			&entity.User{ID: uuid.New(), Email: "kasper@example.com"},
			&usecase.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"},
			nil,
		)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "refresh-token")
}

func TestUserHandler_Refresh_MissingToken(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/api/users/refresh", `{}`)

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_GetProfile(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	userID := uuid.New()
	c, rec := newJSONContext(t, http.MethodGet, "/api/users/me", "")
	deliverycontext.SetUserID(c, userID)

	uc.EXPECT().
		GetProfile(c.Request().Context(), userID).
		Return(&entity.User{ID: userID, Email: "kasper@example.com", Name: "Kasper"}, nil)

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kasper")
}

func TestUserHandler_DeleteAccount(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	userID := uuid.New()
	c, rec := newJSONContext(t, http.MethodDelete, "/api/users/me", "")
	deliverycontext.SetUserID(c, userID)

	uc.EXPECT().DeleteAccount(c.Request().Context(), userID).Return(nil)

	require.NoError(t, h.DeleteAccount(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
