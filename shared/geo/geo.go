package geo

import (
	"math"
	"time"
)

// EarthRadiusMeters is the mean Earth radius used by Haversine.
const EarthRadiusMeters = 6_371_000.0

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Point struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

func (p Point) Coordinate() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

// Haversine returns the great-circle distance between a and b in meters.
func Haversine(a, b Coordinate) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	deltaLat := radians(b.Latitude - a.Latitude)
	deltaLng := radians(b.Longitude - a.Longitude)

	h := math.Pow(math.Sin(deltaLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(deltaLng/2), 2)

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// PathLength sums the Haversine distance over consecutive points; fewer than two points is 0.
func PathLength(points []Point) float64 {
	total := 0.0

	for i := 1; i < len(points); i++ {
		total += Haversine(points[i-1].Coordinate(), points[i].Coordinate())
	}

	return total
}

// Round rounds a distance to centimeters.
func Round(meters float64) float64 {
	return math.Round(meters*100) / 100
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
