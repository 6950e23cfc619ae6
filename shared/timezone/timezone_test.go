package timezone_test

import (
	"os"
	"petcare/shared/timezone"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_TIMEZONE", "America/New_York")

	os.Exit(m.Run())
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "America/New_York", timezone.Location().String())
	assert.Same(t, timezone.Location(), timezone.Location())
}

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.Equal(t, timezone.Location(), now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		layout   string
		expected string
	}{
		{
			name:     "winter offset",
			input:    time.Date(2025, 1, 15, 17, 0, 0, 0, time.UTC),
			layout:   time.RFC3339,
			expected: "2025-01-15T12:00:00-05:00",
		},
		{
			name:     "summer offset",
			input:    time.Date(2025, 7, 4, 16, 30, 0, 0, time.UTC),
			layout:   time.RFC3339,
			expected: "2025-07-04T12:30:00-04:00",
		},
		{
			name:     "date rolls back across midnight",
			input:    time.Date(2025, 3, 10, 2, 0, 0, 0, time.UTC),
			layout:   time.DateOnly,
			expected: "2025-03-09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timezone.Format(tt.input, tt.layout))
		})
	}
}
