package controller

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rachelh2071/earthquake-tracker/internal/feed"
	"github.com/rachelh2071/earthquake-tracker/internal/observability"
	"github.com/rachelh2071/earthquake-tracker/internal/query"
	"github.com/rachelh2071/earthquake-tracker/internal/results"
)

// Snapshot is the controller's published state: the intent that produced
// it, the display-ready result set, and its chart projection. Replaced
// wholesale on every completed trigger; consumers must treat it as
// read-only.
type Snapshot struct {
	Intent  query.Intent
	Results results.Set
	Chart   results.ChartData
}

// Controller owns the active query intent and the single published state
// cell. Triggers may overlap when callers fire rapidly; each dispatch gets
// a sequence number and only the latest dispatched one is allowed to
// publish, so a slow stale fetch can never clobber a newer result.
type Controller struct {
	fetcher feed.Fetcher
	metrics *observability.Metrics

	mu    sync.Mutex
	seq   uint64
	state Snapshot
}

func New(fetcher feed.Fetcher, metrics *observability.Metrics) *Controller {
	return &Controller{
		fetcher: fetcher,
		metrics: metrics,
		// Pre-trigger state is an Ok snapshot with no events.
		state: Snapshot{Chart: results.Chart(results.Set{})},
	}
}

// SelectTimeframe switches to recency mode, clearing any search state and
// prior error or empty-result signal, and runs the query pipeline.
func (c *Controller) SelectTimeframe(ctx context.Context, tf query.Timeframe) Snapshot {
	return c.trigger(ctx, query.ForTimeframe(tf))
}

// SubmitSearch switches to search mode and runs the query pipeline.
// Whitespace-only text is a no-op: no query is issued, the published
// state is untouched, and ok is false.
func (c *Controller) SubmitSearch(ctx context.Context, text string) (Snapshot, bool) {
	intent, ok := query.ForSearch(text)
	if !ok {
		return c.Snapshot(), false
	}
	return c.trigger(ctx, intent), true
}

// Snapshot returns the currently published state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) trigger(ctx context.Context, intent query.Intent) Snapshot {
	c.mu.Lock()
	c.seq++
	id := c.seq
	c.mu.Unlock()

	set := c.runQuery(ctx, intent)
	snap := Snapshot{
		Intent:  intent,
		Results: set,
		Chart:   results.Chart(set),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if id == c.seq {
		c.state = snap
	} else {
		slog.Debug("discarding stale query completion", "seq", id, "latest", c.seq)
	}
	return c.state
}

func (c *Controller) runQuery(ctx context.Context, intent query.Intent) results.Set {
	events, err := c.fetcher.Execute(ctx, intent)
	if err != nil {
		slog.Error("query failed", "mode", intent.Mode, "error", err)
		c.count(intent, "error")
		return results.Failed(err.Error())
	}

	set := results.Process(events, intent)
	switch set.Status {
	case results.StatusEmptyForQuery:
		c.count(intent, "empty")
	default:
		c.count(intent, "ok")
	}
	return set
}

func (c *Controller) count(intent query.Intent, outcome string) {
	if c.metrics != nil {
		c.metrics.QueriesTotal.WithLabelValues(intent.Mode.String(), outcome).Inc()
	}
}
