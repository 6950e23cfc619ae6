package geo_test

import (
	"encoding/json"
	"petcare/shared/geo"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     geo.Coordinate
		expected float64
		delta    float64
	}{
		{
			name:     "same point",
			a:        geo.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
			b:        geo.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
			expected: 0,
		},
		{
			name:     "one degree of latitude",
			a:        geo.Coordinate{Latitude: 0, Longitude: 0},
			b:        geo.Coordinate{Latitude: 1, Longitude: 0},
			expected: 111194.93,
			delta:    0.01,
		},
		{
			name:     "new york to los angeles",
			a:        geo.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
			b:        geo.Coordinate{Latitude: 34.0522, Longitude: -118.2437},
			expected: 3935746,
			delta:    1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, geo.Haversine(tt.a, tt.b), tt.delta)
			assert.InDelta(t, geo.Haversine(tt.a, tt.b), geo.Haversine(tt.b, tt.a), 1e-9)
		})
	}
}

func TestPathLength(t *testing.T) {
	t.Parallel()

	now := time.Now()

	assert.Zero(t, geo.PathLength(nil))
	assert.Zero(t, geo.PathLength([]geo.Point{{Latitude: 1, Longitude: 1, Timestamp: now}}))

	points := []geo.Point{
		{Latitude: 0, Longitude: 0, Timestamp: now},
		{Latitude: 1, Longitude: 0, Timestamp: now},
		{Latitude: 1, Longitude: 1, Timestamp: now},
	}

	expected := geo.Haversine(points[0].Coordinate(), points[1].Coordinate()) +
		geo.Haversine(points[1].Coordinate(), points[2].Coordinate())

	assert.Equal(t, expected, geo.PathLength(points))
}

func TestGeoJSON(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	points := []geo.Point{
		{Latitude: 40.1, Longitude: -74.2, Timestamp: ts},
		{Latitude: 40.2, Longitude: -74.3, Timestamp: ts.Add(time.Minute)},
	}

	data, err := geo.GeoJSON(points, map[string]any{"appointment_id": "abc"})
	require.NoError(t, err)

	var decoded struct {
		Type     string `json:"type"`
		Geometry struct {
			Type        string       `json:"type"`
			Coordinates [][2]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties map[string]any `json:"properties"`
	}

	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "Feature", decoded.Type)
	assert.Equal(t, "LineString", decoded.Geometry.Type)
	assert.Equal(t, [][2]float64{{-74.2, 40.1}, {-74.3, 40.2}}, decoded.Geometry.Coordinates)
	assert.Equal(t, "abc", decoded.Properties["appointment_id"])
	assert.Equal(t, []any{"2025-03-01T09:30:00Z", "2025-03-01T09:31:00Z"}, decoded.Properties["coordTimes"])
}
