package query

import (
	"time"

	"github.com/jonboulle/clockwork"
)

type Timeframe int

const (
	TimeframeHour Timeframe = iota
	TimeframeDay
	TimeframeWeek
)

func (tf Timeframe) String() string {
	switch tf {
	case TimeframeHour:
		return "hour"
	case TimeframeDay:
		return "day"
	case TimeframeWeek:
		return "week"
	default:
		return "unknown"
	}
}

// ParseTimeframe maps the API's window parameter to a Timeframe.
func ParseTimeframe(s string) (Timeframe, bool) {
	switch s {
	case "hour":
		return TimeframeHour, true
	case "day":
		return TimeframeDay, true
	case "week":
		return TimeframeWeek, true
	default:
		return 0, false
	}
}

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake for deterministic output.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for window resolution. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Resolve returns the absolute start instant for a timeframe, relative to
// the moment of the call. Day and week subtract calendar days rather than
// fixed durations so the window tracks DST transitions.
func Resolve(tf Timeframe) time.Time {
	now := clock.Now()
	switch tf {
	case TimeframeHour:
		return now.Add(-time.Hour)
	case TimeframeDay:
		return now.AddDate(0, 0, -1)
	case TimeframeWeek:
		return now.AddDate(0, 0, -7)
	default:
		return now.AddDate(0, 0, -1)
	}
}

// ResolveSearchWindow returns the fixed trailing window for search mode:
// one calendar year before the moment of the call.
func ResolveSearchWindow() time.Time {
	return clock.Now().AddDate(-1, 0, 0)
}
