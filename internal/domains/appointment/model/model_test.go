package model_test

import (
	"petcare/internal/domains/appointment/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from     model.Status
		to       model.Status
		expected bool
	}{
		{from: model.StatusScheduled, to: model.StatusInProgress, expected: true},
		{from: model.StatusScheduled, to: model.StatusCancelled, expected: true},
		{from: model.StatusScheduled, to: model.StatusCompleted, expected: false},
		{from: model.StatusInProgress, to: model.StatusCompleted, expected: true},
		{from: model.StatusInProgress, to: model.StatusCancelled, expected: true},
		{from: model.StatusInProgress, to: model.StatusScheduled, expected: false},
		{from: model.StatusCompleted, to: model.StatusCancelled, expected: false},
		{from: model.StatusCancelled, to: model.StatusScheduled, expected: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.from.CanTransitionTo(tt.to))
		})
	}

	assert.True(t, model.StatusCompleted.Terminal())
	assert.True(t, model.StatusCancelled.Terminal())
	assert.False(t, model.StatusInProgress.Terminal())
}

func TestRoute_ValueScan(t *testing.T) {
	t.Parallel()

	route := model.Route{
		{Latitude: 40.1, Longitude: -74.2, Timestamp: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)},
	}

	value, err := route.Value()
	require.NoError(t, err)

	var scanned model.Route
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, route, scanned)

	var empty model.Route
	require.NoError(t, empty.Scan(nil))
	assert.Equal(t, model.Route{}, empty)

	value, err = model.Route(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)

	assert.Error(t, empty.Scan(42))
}

func TestAppointment_DogCountAndWalker(t *testing.T) {
	t.Parallel()

	walker := "walker-1"
	appointment := model.Appointment{PetIDs: []string{"a", "b"}, WalkerID: &walker}

	assert.Equal(t, 2, appointment.DogCount())
	assert.True(t, appointment.HasWalker("walker-1"))
	assert.False(t, appointment.HasWalker("walker-2"))
	assert.False(t, model.Appointment{}.HasWalker("walker-1"))
}
