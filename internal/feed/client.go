package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/rachelh2071/earthquake-tracker/internal/models"
	"github.com/rachelh2071/earthquake-tracker/internal/observability"
	"github.com/rachelh2071/earthquake-tracker/internal/query"
)

// ErrRetrieval marks any failure of the feed round trip. Transport errors,
// bad status codes, and malformed payloads all wrap it so callers see one
// uniform failure; the wrapped detail stays available for logs.
var ErrRetrieval = errors.New("feed retrieval failed")

// Fetcher is the executor seam the controller depends on.
type Fetcher interface {
	Execute(ctx context.Context, intent query.Intent) ([]models.SeismicEvent, error)
}

// Client queries the USGS FDSN event endpoint. One GET per Execute call,
// no retries; a circuit breaker fails fast while the upstream is down.
type Client struct {
	baseURL    string
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
	metrics    *observability.Metrics
	recencyCap int
	searchCap  int
}

func NewClient(baseURL string, timeout time.Duration, recencyCap, searchCap int, metrics *observability.Metrics) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "usgs-feed",
		MaxRequests: 3,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		circuit:    cb,
		metrics:    metrics,
		recencyCap: recencyCap,
		searchCap:  searchCap,
	}
}

type feedResponse struct {
	Features []feedFeature `json:"features"`
}

type feedFeature struct {
	ID         string         `json:"id"`
	Properties feedProperties `json:"properties"`
	Geometry   feedGeometry   `json:"geometry"`
}
type feedProperties struct {
	Mag   float64 `json:"mag"`
	Place string  `json:"place"`
	Time  int64   `json:"time"` // epoch millis
}
type feedGeometry struct {
	Coordinates []float64 `json:"coordinates"` // [lon, lat, depth]
}

// Execute performs exactly one feed round trip for the given intent.
// Recency mode asks the server for the strongest events inside the window;
// search mode pulls a year of events for client-side place matching since
// the feed has no text filter.
func (c *Client) Execute(ctx context.Context, intent query.Intent) ([]models.SeismicEvent, error) {
	params := url.Values{}
	params.Set("format", "geojson")

	switch intent.Mode {
	case query.ModeSearch:
		params.Set("starttime", query.ResolveSearchWindow().UTC().Format(time.RFC3339))
		params.Set("limit", strconv.Itoa(c.searchCap))
	default:
		params.Set("starttime", query.Resolve(intent.Timeframe).UTC().Format(time.RFC3339))
		params.Set("orderby", "magnitude")
		params.Set("limit", strconv.Itoa(c.recencyCap))
	}

	start := time.Now()
	result, err := c.circuit.Execute(func() (interface{}, error) {
		return c.fetch(ctx, c.baseURL+"?"+params.Encode())
	})
	if c.metrics != nil {
		c.metrics.FetchDuration.WithLabelValues(intent.Mode.String()).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRetrieval, err)
	}

	events := result.([]models.SeismicEvent)
	if c.metrics != nil {
		c.metrics.EventsReturned.Observe(float64(len(events)))
	}
	return events, nil
}

func (c *Client) fetch(ctx context.Context, fullURL string) ([]models.SeismicEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d - status: %s", resp.StatusCode, resp.Status)
	}

	var data feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("error decoding resp.Body: %w", err)
	}
	if data.Features == nil {
		return nil, fmt.Errorf("response missing features array")
	}

	events := make([]models.SeismicEvent, 0, len(data.Features))
	for _, f := range data.Features {
		e := models.SeismicEvent{
			ID:        f.ID,
			Place:     f.Properties.Place,
			Magnitude: f.Properties.Mag,
			Time:      time.UnixMilli(f.Properties.Time),
		}
		if len(f.Geometry.Coordinates) >= 3 {
			e.Longitude = f.Geometry.Coordinates[0]
			e.Latitude = f.Geometry.Coordinates[1]
			e.Depth = f.Geometry.Coordinates[2]
		}
		events = append(events, e)
	}

	return events, nil
}
