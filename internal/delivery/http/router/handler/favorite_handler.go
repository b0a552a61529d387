package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "happnings/internal/delivery/context"
	"happnings/internal/delivery/http/response"
	"happnings/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddFavoriteRequest is the event snapshot sent when favoriting an event.
type AddFavoriteRequest struct {
	EventID   string `json:"event_id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	EventDate string `json:"event_date"`
	Price     string `json:"price"`
	VenueName string `json:"venue_name"`
	Address   string `json:"address"`
	ImageURL  string `json:"image_url"`
	URL       string `json:"url"`
}

// FavoriteHandler holds dependencies for favorite handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddFavorite handles the favorite creation request.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "event_id and title are required")
	}

	favorite, err := h.uc.AddFavorite(c.Request().Context(), userID, &usecase.FavoriteInput{
		EventID:   req.EventID,
		Title:     req.Title,
		EventDate: req.EventDate,
		Price:     req.Price,
		VenueName: req.VenueName,
		Address:   req.Address,
		ImageURL:  req.ImageURL,
		URL:       req.URL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Favorite added")
}

// ListFavorites handles the favorite list request.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	favorites, err := h.uc.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "")
}

// RemoveFavorite handles the favorite deletion request, keyed by event ID.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	if err := h.uc.RemoveFavorite(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorite removed")
}
