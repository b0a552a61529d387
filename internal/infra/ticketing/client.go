// Package ticketing implements the discovery API client.
package ticketing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"happnings/config"
	"happnings/internal/domain/entity"
	"happnings/internal/domain/service"
	"happnings/internal/errors"

	"go.uber.org/fx"
)

// ErrNotFound reports that the requested resource does not exist upstream.
var ErrNotFound = errors.New("discovery resource not found")

// Params defines the parameters required for the ticketing client
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a discovery API client from config. A missing section yields a
// client whose requests fail against the zero base URL rather than a panic.
func New(params Params) service.TicketingProvider {
	cfg := params.Config.Ticketing
	if cfg == nil {
		cfg = &config.TicketingConfig{}
	}

	return &client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: params.Logger,
	}
}

func (c *client) SearchEvents(ctx context.Context, query *service.EventQuery) ([]*entity.Event, error) {
	params := buildSearchParams(query)

	var resp searchResponse
	if err := c.getJSON(ctx, "/events", params, &resp); err != nil {
		return nil, err
	}

	if resp.Embedded == nil {
		return []*entity.Event{}, nil
	}

	events := make([]*entity.Event, 0, len(resp.Embedded.Events))
	for i := range resp.Embedded.Events {
		events = append(events, formatEvent(&resp.Embedded.Events[i]))
	}

	return events, nil
}

func (c *client) GetEventByID(ctx context.Context, id string) (*entity.Event, error) {
	var raw rawEvent
	if err := c.getJSON(ctx, "/events/"+url.PathEscape(id), url.Values{}, &raw); err != nil {
		return nil, err
	}

	return formatEvent(&raw), nil
}

func (c *client) ListClassifications(ctx context.Context) ([]*service.Classification, error) {
	var resp classificationsResponse
	if err := c.getJSON(ctx, "/classifications", url.Values{}, &resp); err != nil {
		return nil, err
	}

	if resp.Embedded == nil {
		return []*service.Classification{}, nil
	}

	classifications := make([]*service.Classification, 0, len(resp.Embedded.Classifications))
	for _, raw := range resp.Embedded.Classifications {
		if raw.Segment == nil {
			continue
		}

		classification := &service.Classification{
			Segment: entity.Category{ID: raw.Segment.ID, Name: raw.Segment.Name},
		}
		if raw.Segment.Embedded != nil {
			for _, genre := range raw.Segment.Embedded.Genres {
				classification.Genres = append(classification.Genres, entity.Category{
					ID:   genre.ID,
					Name: genre.Name,
				})
			}
		}
		classifications = append(classifications, classification)
	}

	return classifications, nil
}

// getJSON performs an authenticated GET and decodes the body into out.
// Non-2xx responses surface as errors carrying the upstream status.
func (c *client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "create discovery request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "call discovery API")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close discovery response body", slog.Any("error", closeErr))
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Warn("discovery API returned non-success status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return errors.New(fmt.Sprintf("discovery API status %d: %s", resp.StatusCode, string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode discovery response")
	}

	return nil
}
