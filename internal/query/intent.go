package query

import "strings"

type Mode int

const (
	ModeRecency Mode = iota
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "recency"
}

// Intent is the active query: either a recency window or a place-text
// search, never both. Build one through ForTimeframe or ForSearch so the
// unused mode's state stays zeroed.
type Intent struct {
	Mode         Mode
	Timeframe    Timeframe
	LocationText string
}

func ForTimeframe(tf Timeframe) Intent {
	return Intent{Mode: ModeRecency, Timeframe: tf}
}

// ForSearch returns a search intent and whether the text was usable.
// Whitespace-only input yields ok=false and callers must not issue a query.
func ForSearch(text string) (Intent, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Intent{}, false
	}
	return Intent{Mode: ModeSearch, LocationText: trimmed}, true
}
