package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/model"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/utils/logging"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultBaseURL is the public deployment of the club service
const DefaultBaseURL = "https://app.f3a-pattern-aerobatics-rc.club:30080"

// Client fetches club data from the service. Every Fetch method returns nil
// when the call fails for any reason; the failure is logged, not returned.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a functional option for Client configuration
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for requests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the service at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchClubInfo returns the club information, or nil on failure
func (c *Client) FetchClubInfo(ctx context.Context) *model.ClubInfo {
	var club model.ClubInfo
	if err := c.get(ctx, "/api/club", &club); err != nil {
		logging.From(ctx).Error("Failed to fetch club info", "error", err)
		return nil
	}
	return &club
}

// FetchEvents returns the upcoming events, or nil on failure
func (c *Client) FetchEvents(ctx context.Context) *model.EventList {
	var events model.EventList
	if err := c.get(ctx, "/api/events", &events); err != nil {
		logging.From(ctx).Error("Failed to fetch events", "error", err)
		return nil
	}
	return &events
}

// FetchAircraft returns the recommended aircraft, or nil on failure
func (c *Client) FetchAircraft(ctx context.Context) *model.AircraftList {
	var aircraft model.AircraftList
	if err := c.get(ctx, "/api/aircraft", &aircraft); err != nil {
		logging.From(ctx).Error("Failed to fetch aircraft", "error", err)
		return nil
	}
	return &aircraft
}

// CheckHealth returns the service health, or nil on failure
func (c *Client) CheckHealth(ctx context.Context) *model.HealthStatus {
	var status model.HealthStatus
	if err := c.get(ctx, "/health", &status); err != nil {
		logging.From(ctx).Error("Health check failed", "error", err)
		return nil
	}
	return &status
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	url := c.baseURL + path
	reqID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("url", url))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "request failed", goerr.V("url", url), goerr.V("request_id", reqID))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return goerr.New("unexpected status code",
			goerr.V("url", url),
			goerr.V("request_id", reqID),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode response", goerr.V("url", url), goerr.V("request_id", reqID))
	}

	return nil
}
