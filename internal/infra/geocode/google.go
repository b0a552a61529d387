// Package geocode implements the forward geocoding client.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"happnings/config"
	"happnings/internal/domain/entity"
	domainerrors "happnings/internal/domain/errors"
	"happnings/internal/domain/service"
	"happnings/internal/errors"

	"go.uber.org/fx"
)

// Params defines the parameters required for the geocoding client
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type googleGeocoder struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a geocoding client from config. A missing section yields a
// client whose requests fail against the zero base URL rather than a panic.
func New(params Params) service.Geocoder {
	cfg := params.Config.Geocoding
	if cfg == nil {
		cfg = &config.GeocodingConfig{}
	}

	return &googleGeocoder{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: params.Logger,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *googleGeocoder) Geocode(ctx context.Context, address string) (entity.Coordinates, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)
	endpoint := g.baseURL + "/json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "create geocode request")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "call geocoding API")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			g.logger.Warn("failed to close geocode response body", slog.Any("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return entity.Coordinates{}, errors.New(fmt.Sprintf("geocoding API status %d", resp.StatusCode))
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "decode geocode response")
	}

	// ZERO_RESULTS is a valid answer meaning the address does not resolve.
	if body.Status == "ZERO_RESULTS" || len(body.Results) == 0 {
		return entity.Coordinates{}, domainerrors.ErrAddressNotFound
	}
	if body.Status != "OK" {
		return entity.Coordinates{}, errors.New(fmt.Sprintf("geocoding API status %s", body.Status))
	}

	location := body.Results[0].Geometry.Location

	return entity.Coordinates{Lat: location.Lat, Lng: location.Lng}, nil
}
