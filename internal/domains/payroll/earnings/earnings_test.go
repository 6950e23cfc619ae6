package earnings_test

import (
	"petcare/internal/domains/catalog"
	"petcare/internal/domains/payroll/earnings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func minutes(value int) *int {
	return &value
}

func TestEarnings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		serviceType catalog.ServiceType
		duration    *int
		expected    float64
	}{
		{name: "short walk is flat", serviceType: catalog.WalkShort, duration: minutes(45), expected: 15.00},
		{name: "long walk is flat without duration", serviceType: catalog.WalkLong, duration: nil, expected: 25.00},
		{name: "transport one hour", serviceType: catalog.Transport, duration: minutes(60), expected: 20.00},
		{name: "concierge rounds to cents", serviceType: catalog.Concierge, duration: minutes(25), expected: 8.33},
		{name: "pet sitting by the hour", serviceType: catalog.PetSitClientHome, duration: minutes(90), expected: 30.00},
		{name: "missing duration", serviceType: catalog.Transport, duration: nil, expected: 0},
		{name: "zero duration", serviceType: catalog.Concierge, duration: minutes(0), expected: 0},
		{name: "unknown service hourly", serviceType: "grooming", duration: minutes(30), expected: 10.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, earnings.Earnings(tt.serviceType, tt.duration), 1e-9)
		})
	}
}
