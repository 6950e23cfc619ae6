package geo

import (
	"encoding/json"
	"fmt"
	"time"
)

type feature struct {
	Type       string         `json:"type"`
	Geometry   lineString     `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type lineString struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// GeoJSON encodes the route as a LineString Feature. Coordinates are [longitude, latitude] as RFC 7946
// requires; per-point timestamps go into the coordTimes property.
func GeoJSON(points []Point, properties map[string]any) ([]byte, error) {
	coordinates := make([][2]float64, 0, len(points))
	times := make([]string, 0, len(points))

	for _, point := range points {
		coordinates = append(coordinates, [2]float64{point.Longitude, point.Latitude})
		times = append(times, point.Timestamp.UTC().Format(time.RFC3339))
	}

	props := make(map[string]any, len(properties)+1)
	for key, value := range properties {
		props[key] = value
	}

	props["coordTimes"] = times

	data, err := json.Marshal(feature{
		Type:       "Feature",
		Geometry:   lineString{Type: "LineString", Coordinates: coordinates},
		Properties: props,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode route as GeoJSON: %w", err)
	}

	return data, nil
}
