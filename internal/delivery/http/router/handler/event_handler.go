// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"happnings/internal/delivery/http/response"
	domainerrors "happnings/internal/domain/errors"
	"happnings/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// kmPerMile converts a radius given in miles back to the kilometer form the
// use case expects.
const kmPerMile = 1.609344

// EventHandler holds dependencies for event discovery handlers.
type EventHandler struct {
	uc     usecase.EventUsecase
	logger *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		uc:     uc,
		logger: logger,
	}
}

// SearchEvents handles the event search request.
func (h *EventHandler) SearchEvents(c echo.Context) error {
	params, err := parseSearchParams(c)
	if err != nil {
		return errors.WithStack(err)
	}

	events, err := h.uc.SearchEvents(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// GetEvent handles the single event detail request.
func (h *EventHandler) GetEvent(c echo.Context) error {
	event, err := h.uc.GetEventByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "")
}

// GetEventQR renders the event's ticket page URL as a QR code PNG.
func (h *EventHandler) GetEventQR(c echo.Context) error {
	png, err := h.uc.GetEventShareQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListCategories handles the category list request.
func (h *EventHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// parseSearchParams maps query parameters onto the search intent. Unknown
// parameters are ignored; malformed numeric values are rejected.
func parseSearchParams(c echo.Context) (*usecase.EventSearchParams, error) {
	params := &usecase.EventSearchParams{}

	lat, err := floatParam(c, "latitude")
	if err != nil {
		return nil, domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid latitude", c.QueryParam("latitude"))
	}
	lng, err := floatParam(c, "longitude")
	if err != nil {
		return nil, domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid longitude", c.QueryParam("longitude"))
	}
	params.Latitude = lat
	params.Longitude = lng

	radius, err := floatParam(c, "radius")
	if err != nil {
		return nil, domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid radius", c.QueryParam("radius"))
	}
	if radius != nil {
		switch c.QueryParam("unit") {
		case "", "km":
		case "miles":
			km := *radius * kmPerMile
			radius = &km
		default:
			return nil, domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Unit must be km or miles", c.QueryParam("unit"))
		}
		params.RadiusKm = radius
	}

	params.StartDate = c.QueryParam("startDate")
	params.EndDate = c.QueryParam("endDate")
	params.DatePreset = c.QueryParam("eventDate")

	if categories := c.QueryParam("categories"); categories != "" {
		for _, name := range strings.Split(categories, ",") {
			if name = strings.TrimSpace(name); name != "" {
				params.Categories = append(params.Categories, name)
			}
		}
	} else if category := c.QueryParam("category"); category != "" {
		params.Categories = []string{category}
	}

	if search := c.QueryParam("search"); search != "" {
		params.SearchText = search
	} else {
		params.SearchText = c.QueryParam("keyword")
	}

	return params, nil
}

// floatParam parses an optional float query parameter, nil when absent.
func floatParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
