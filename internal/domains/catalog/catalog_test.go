package catalog_test

import (
	"petcare/internal/domains/catalog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseServiceType(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"walk_short", "walk_long", "petsit_client_home", "petsit_our_location", "transport", "concierge"} {
		parsed, ok := catalog.ParseServiceType(value)
		assert.True(t, ok)
		assert.Equal(t, value, parsed.String())
	}

	_, ok := catalog.ParseServiceType("grooming")
	assert.False(t, ok)
}

func TestServiceType_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		serviceType  catalog.ServiceType
		petSitting   bool
		requiresTime bool
	}{
		{serviceType: catalog.WalkShort, petSitting: false, requiresTime: true},
		{serviceType: catalog.WalkLong, petSitting: false, requiresTime: true},
		{serviceType: catalog.PetSitClientHome, petSitting: true, requiresTime: false},
		{serviceType: catalog.PetSitOurLocation, petSitting: true, requiresTime: false},
		{serviceType: catalog.Transport, petSitting: false, requiresTime: true},
		{serviceType: catalog.Concierge, petSitting: false, requiresTime: true},
		{serviceType: "unknown", petSitting: false, requiresTime: false},
	}

	for _, tt := range tests {
		t.Run(tt.serviceType.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.petSitting, tt.serviceType.IsPetSitting())
			assert.Equal(t, tt.requiresTime, tt.serviceType.RequiresTime())
		})
	}
}
