package results

import (
	"sort"
	"strings"

	"github.com/rachelh2071/earthquake-tracker/internal/models"
	"github.com/rachelh2071/earthquake-tracker/internal/query"
)

type Status int

const (
	StatusOk Status = iota
	StatusEmptyForQuery
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusEmptyForQuery:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return "ok"
	}
}

// Set is the display-ready outcome of one query. Regenerated wholesale on
// every trigger; never merged with a previous Set.
type Set struct {
	Events     []models.SeismicEvent
	Status     Status
	SearchText string // populated for StatusEmptyForQuery
	Reason     string // populated for StatusFailed
}

// Failed tags a retrieval failure. The reason is for logs only; the user
// message stays generic regardless of cause.
func Failed(reason string) Set {
	return Set{Status: StatusFailed, Reason: reason}
}

// Process reshapes raw feed events for display. Recency mode sorts
// chronologically (stable, so equal timestamps keep feed order); search
// mode filters by place text and keeps the feed's magnitude ordering.
// Pure over its inputs, no I/O.
func Process(rawEvents []models.SeismicEvent, intent query.Intent) Set {
	if intent.Mode == query.ModeSearch {
		return filterByPlace(rawEvents, intent.LocationText)
	}
	return sortChronological(rawEvents)
}

func sortChronological(events []models.SeismicEvent) Set {
	sorted := make([]models.SeismicEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})
	return Set{Events: sorted, Status: StatusOk}
}

func filterByPlace(events []models.SeismicEvent, text string) Set {
	needle := strings.ToLower(text)
	matched := make([]models.SeismicEvent, 0, len(events))
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Place), needle) {
			matched = append(matched, e)
		}
	}

	if len(matched) == 0 {
		// A normal outcome, not a failure: the feed answered, nothing matched.
		return Set{Status: StatusEmptyForQuery, SearchText: text}
	}
	return Set{Events: matched, Status: StatusOk}
}
