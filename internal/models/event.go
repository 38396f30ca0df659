package models

import "time"

type SeismicEvent struct {
	ID        string  // Unique ID from the feed (e.g., "us7000abcd")
	Place     string  // Free-text location description
	Magnitude float64 // Richter scale
	Longitude float64
	Latitude  float64
	Depth     float64   // km, carried through for display only
	Time      time.Time // when the event occurred
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func (e *SeismicEvent) Coordinates() Coordinates {
	return Coordinates{
		Latitude:  e.Latitude,
		Longitude: e.Longitude,
	}
}
