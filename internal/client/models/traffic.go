package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated CLI session.
type Session struct {
	ID        uuid.UUID
	Email     string
	StartedAt time.Time
}

// SpeedReading is one result of the mock speed detector.
type SpeedReading struct {
	ID         uuid.UUID
	SpeedKmh   int
	DetectedAt time.Time
}

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Region is a map viewport: a center plus the visible span in degrees.
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
}

// Route is a suggested path between two free-text places.
type Route struct {
	Origin      string
	Destination string
	Points      []Coordinate
	Region      Region
}
