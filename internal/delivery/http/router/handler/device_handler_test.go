package handler

import (
	"net/http"
	"testing"

	deliverycontext "happnings/internal/delivery/context"
	"happnings/internal/domain/entity"
	mockUsecase "happnings/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceHandler_RegisterDevice_Success(t *testing.T) {
	uc := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(uc, newDiscardLogger())

	userID := uuid.New()
	c, rec := newJSONContext(t, http.MethodPost, "/api/devices",
		`{"fcm_token":"fcm-abc","platform":"ios"}`)
	deliverycontext.SetUserID(c, userID)

	uc.EXPECT().
		RegisterDevice(c.Request().Context(), userID, "fcm-abc", "ios").
		Return(&entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "fcm-abc", Platform: "ios", IsActive: true}, nil)

	require.NoError(t, h.RegisterDevice(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "fcm-abc")
}

func TestDeviceHandler_RegisterDevice_UnknownPlatform(t *testing.T) {
	uc := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/api/devices",
		`{"fcm_token":"fcm-abc","platform":"windows"}`)
	deliverycontext.SetUserID(c, uuid.New())

	require.NoError(t, h.RegisterDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestDeviceHandler_UnregisterDevice(t *testing.T) {
	uc := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(uc, newDiscardLogger())

	userID := uuid.New()
	c, rec := newJSONContext(t, http.MethodDelete, "/api/devices/fcm-abc", "")
	c.SetParamNames("token")
	c.SetParamValues("fcm-abc")
	deliverycontext.SetUserID(c, userID)

	uc.EXPECT().UnregisterDevice(c.Request().Context(), userID, "fcm-abc").Return(nil)

	require.NoError(t, h.UnregisterDevice(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
