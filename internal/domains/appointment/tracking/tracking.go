// Package tracking accumulates the GPS route of a walk in progress.
package tracking

import (
	"errors"
	"math"
	"petcare/shared/geo"
	"slices"
	"time"
)

var ErrNotTracking = errors.New("appointment is not being tracked")

type Session struct {
	Route           []geo.Point
	DistanceMeters  float64
	IsTracking      bool
	StartedAt       time.Time
	CompletedAt     *time.Time
	DurationMinutes *int
}

// Start opens a session whose route holds only the starting point.
func Start(lat, lng float64, now time.Time) *Session {
	return &Session{
		Route:      []geo.Point{{Latitude: lat, Longitude: lng, Timestamp: now}},
		IsTracking: true,
		StartedAt:  now,
	}
}

// Resume rebuilds a session from persisted state. distanceMeters must be the unrounded running total.
func Resume(route []geo.Point, distanceMeters float64, isTracking bool, startedAt time.Time) *Session {
	return &Session{
		Route:          slices.Clone(route),
		DistanceMeters: distanceMeters,
		IsTracking:     isTracking,
		StartedAt:      startedAt,
	}
}

// AddPoint appends a sample and adds only the newest segment to the running distance.
func (s *Session) AddPoint(lat, lng float64, now time.Time) error {
	if !s.IsTracking {
		return ErrNotTracking
	}

	s.append(geo.Point{Latitude: lat, Longitude: lng, Timestamp: now})

	return nil
}

// Stop optionally appends a final point, ends tracking and records the elapsed whole minutes.
func (s *Session) Stop(final *geo.Coordinate, now time.Time) error {
	if !s.IsTracking {
		return ErrNotTracking
	}

	if final != nil {
		s.append(geo.Point{Latitude: final.Latitude, Longitude: final.Longitude, Timestamp: now})
	}

	minutes := int(math.Floor(now.Sub(s.StartedAt).Seconds() / 60))

	s.IsTracking = false
	s.CompletedAt = &now
	s.DurationMinutes = &minutes

	return nil
}

// Distance is the route length in meters, rounded to 2 decimals.
func (s *Session) Distance() float64 {
	return geo.Round(s.DistanceMeters)
}

func (s *Session) LastPoint() (geo.Point, bool) {
	if len(s.Route) == 0 {
		return geo.Point{}, false
	}

	return s.Route[len(s.Route)-1], true
}

func (s *Session) append(point geo.Point) {
	if last, ok := s.LastPoint(); ok {
		s.DistanceMeters += geo.Haversine(last.Coordinate(), point.Coordinate())
	}

	s.Route = append(s.Route, point)
}
