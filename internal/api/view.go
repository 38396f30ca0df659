package api

import (
	"fmt"
	"time"

	"github.com/rachelh2071/earthquake-tracker/internal/controller"
	"github.com/rachelh2071/earthquake-tracker/internal/results"
)

// genericFailureMessage is shown for every retrieval failure regardless of
// cause; the underlying detail goes to logs only.
const genericFailureMessage = "Could not load earthquake data. Please try again."

type SnapshotView struct {
	Mode    string            `json:"mode"`
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Events  []EventView       `json:"events"`
	Chart   results.ChartData `json:"chart"`
}

type EventView struct {
	ID        string    `json:"id"`
	Place     string    `json:"place"`
	Magnitude float64   `json:"magnitude"`
	Time      time.Time `json:"time"`
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
	Depth     float64   `json:"depth"`
}

func toView(snap controller.Snapshot) SnapshotView {
	view := SnapshotView{
		Mode:   snap.Intent.Mode.String(),
		Status: snap.Results.Status.String(),
		Events: make([]EventView, 0, len(snap.Results.Events)),
		Chart:  snap.Chart,
	}

	switch snap.Results.Status {
	case results.StatusFailed:
		view.Message = genericFailureMessage
	case results.StatusEmptyForQuery:
		view.Message = fmt.Sprintf("No earthquakes found matching %q.", snap.Results.SearchText)
	}

	for _, e := range snap.Results.Events {
		view.Events = append(view.Events, EventView{
			ID:        e.ID,
			Place:     e.Place,
			Magnitude: e.Magnitude,
			Time:      e.Time,
			Longitude: e.Longitude,
			Latitude:  e.Latitude,
			Depth:     e.Depth,
		})
	}

	return view
}
