package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rachelh2071/earthquake-tracker/internal/query"
)

const fixtureBody = `{
	"type": "FeatureCollection",
	"features": [
		{
			"id": "us7000aaaa",
			"properties": {"mag": 5.3, "place": "10km N of Reno, NV", "time": 1750000000000},
			"geometry": {"coordinates": [-119.8, 39.6, 7.2]}
		},
		{
			"id": "us7000bbbb",
			"properties": {"mag": 4.1, "place": "Tokyo, Japan", "time": 1750000100000},
			"geometry": {"coordinates": [139.7, 35.7, 30.0]}
		}
	]
}`

func newTestClient(url string) *Client {
	return NewClient(url, 5*time.Second, 10, 1000, nil)
}

func TestExecute_RecencyQueryParams(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	query.SetClock(clockwork.NewFakeClockAt(now))
	defer query.SetClock(nil)

	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"format":    r.URL.Query().Get("format"),
			"starttime": r.URL.Query().Get("starttime"),
			"orderby":   r.URL.Query().Get("orderby"),
			"limit":     r.URL.Query().Get("limit"),
		}
		w.Write([]byte(fixtureBody))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	events, err := client.Execute(context.Background(), query.ForTimeframe(query.TimeframeDay))
	require.NoError(t, err)

	assert.Equal(t, "geojson", gotQuery["format"])
	assert.Equal(t, "2025-06-14T12:00:00Z", gotQuery["starttime"])
	assert.Equal(t, "magnitude", gotQuery["orderby"])
	assert.Equal(t, "10", gotQuery["limit"])
	require.Len(t, events, 2)
}

func TestExecute_SearchQueryParams(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	query.SetClock(clockwork.NewFakeClockAt(now))
	defer query.SetClock(nil)

	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"starttime": r.URL.Query().Get("starttime"),
			"orderby":   r.URL.Query().Get("orderby"),
			"limit":     r.URL.Query().Get("limit"),
		}
		w.Write([]byte(fixtureBody))
	}))
	defer srv.Close()

	intent, ok := query.ForSearch("reno")
	require.True(t, ok)

	client := newTestClient(srv.URL)
	_, err := client.Execute(context.Background(), intent)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-15T12:00:00Z", gotQuery["starttime"])
	assert.Empty(t, gotQuery["orderby"], "search mode must not ask for magnitude ordering")
	assert.Equal(t, "1000", gotQuery["limit"])
}

func TestExecute_DecodesEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixtureBody))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	events, err := client.Execute(context.Background(), query.ForTimeframe(query.TimeframeHour))
	require.NoError(t, err)
	require.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, "us7000aaaa", first.ID)
	assert.Equal(t, "10km N of Reno, NV", first.Place)
	assert.Equal(t, 5.3, first.Magnitude)
	assert.Equal(t, time.UnixMilli(1750000000000), first.Time)
	assert.Equal(t, -119.8, first.Longitude)
	assert.Equal(t, 39.6, first.Latitude)
	assert.Equal(t, 7.2, first.Depth)
}

func TestExecute_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Execute(context.Background(), query.ForTimeframe(query.TimeframeHour))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetrieval)
}

func TestExecute_MalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>gateway timeout</html>"},
		{"missing features", `{"type": "FeatureCollection"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := newTestClient(srv.URL)
			_, err := client.Execute(context.Background(), query.ForTimeframe(query.TimeframeWeek))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRetrieval)
		})
	}
}

func TestExecute_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := newTestClient(srv.URL)
	_, err := client.Execute(context.Background(), query.ForTimeframe(query.TimeframeHour))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetrieval)
}

func TestExecute_EmptyFeatures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type": "FeatureCollection", "features": []}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	events, err := client.Execute(context.Background(), query.ForTimeframe(query.TimeframeHour))
	require.NoError(t, err)
	assert.Empty(t, events)
}
