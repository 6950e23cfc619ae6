package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name     string
		path     string
		method   string
		wantSkip  bool
		wantRole  []string
		wantFound bool
	}{
		{name: "login skips auth", path: "/v1/auth/login", method: "POST", wantSkip: true, wantFound: true},
		{name: "mount root without slash", path: "/v1/appointments", method: "POST", wantRole: []string{"admin", "client"}, wantFound: true},
		{name: "mount root with slash", path: "/v1/appointments/", method: "POST", wantRole: []string{"admin", "client"}, wantFound: true},
		{name: "tracking is for walkers", path: "/v1/appointments/{id}/tracking/points", method: "POST", wantRole: []string{"admin", "walker"}, wantFound: true},
		{name: "unknown route", path: "/v1/unknown", method: "GET"},
		{name: "method matters", path: "/v1/auth/login", method: "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission, found := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantRole, permission.Permissions)
		})
	}
}
