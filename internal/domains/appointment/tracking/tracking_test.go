package tracking_test

import (
	"math"
	"math/rand/v2"
	"petcare/internal/domains/appointment/tracking"
	"petcare/shared/geo"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestStart(t *testing.T) {
	t.Parallel()

	session := tracking.Start(40.7128, -74.0060, start)

	assert.True(t, session.IsTracking)
	assert.Len(t, session.Route, 1)
	assert.Zero(t, session.Distance())
	assert.Equal(t, start, session.StartedAt)
	assert.Nil(t, session.CompletedAt)
}

func TestAddPoint_MatchesFromScratch(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	session := tracking.Start(40.7128, -74.0060, start)

	previous := session.Distance()

	for i := range 200 {
		lat := 40.7128 + (rng.Float64()-0.5)*0.01
		lng := -74.0060 + (rng.Float64()-0.5)*0.01

		require.NoError(t, session.AddPoint(lat, lng, start.Add(time.Duration(i+1)*time.Second)))

		assert.GreaterOrEqual(t, session.Distance(), previous)
		previous = session.Distance()
	}

	fromScratch := geo.PathLength(session.Route)

	assert.Equal(t, fromScratch, session.DistanceMeters)
	assert.Equal(t, math.Round(fromScratch*100)/100, session.Distance())
}

func TestAddPoint_SamePointKeepsDistance(t *testing.T) {
	t.Parallel()

	session := tracking.Start(1, 1, start)

	require.NoError(t, session.AddPoint(1, 1, start.Add(time.Second)))

	assert.Zero(t, session.Distance())
	assert.Len(t, session.Route, 2)
}

func TestResume_ContinuesRunningTotal(t *testing.T) {
	t.Parallel()

	first := tracking.Start(0, 0, start)
	require.NoError(t, first.AddPoint(0, 0.01, start.Add(time.Minute)))

	resumed := tracking.Resume(first.Route, first.DistanceMeters, true, first.StartedAt)
	require.NoError(t, resumed.AddPoint(0, 0.02, start.Add(2*time.Minute)))

	assert.Equal(t, geo.PathLength(resumed.Route), resumed.DistanceMeters)
	assert.Len(t, first.Route, 2, "resume must not alias the persisted route")
}

func TestStop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		final            *geo.Coordinate
		elapsed          time.Duration
		expectedPoints   int
		expectedDuration int
	}{
		{
			name:             "with final point",
			final:            &geo.Coordinate{Latitude: 0, Longitude: 0.01},
			elapsed:          31*time.Minute + 59*time.Second,
			expectedPoints:   2,
			expectedDuration: 31,
		},
		{
			name:             "without final point",
			elapsed:          59 * time.Second,
			expectedPoints:   1,
			expectedDuration: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			session := tracking.Start(0, 0, start)
			end := start.Add(tt.elapsed)

			require.NoError(t, session.Stop(tt.final, end))

			assert.False(t, session.IsTracking)
			assert.Len(t, session.Route, tt.expectedPoints)
			require.NotNil(t, session.CompletedAt)
			assert.Equal(t, end, *session.CompletedAt)
			require.NotNil(t, session.DurationMinutes)
			assert.Equal(t, tt.expectedDuration, *session.DurationMinutes)
			assert.Equal(t, geo.PathLength(session.Route), session.DistanceMeters)
		})
	}
}

func TestStoppedSessionRejectsPoints(t *testing.T) {
	t.Parallel()

	session := tracking.Start(0, 0, start)
	require.NoError(t, session.Stop(nil, start.Add(time.Minute)))

	assert.ErrorIs(t, session.AddPoint(1, 1, start.Add(2*time.Minute)), tracking.ErrNotTracking)
	assert.ErrorIs(t, session.Stop(nil, start.Add(3*time.Minute)), tracking.ErrNotTracking)
	assert.Len(t, session.Route, 1)
}
