package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectStore_ObjectURL(t *testing.T) {
	tests := []struct {
		name     string
		store    objectStore
		bucket   string
		expected string
	}{
		{
			name:     "public domain",
			store:    objectStore{defaultBucket: "routes", publicDomain: "https://cdn.example.com"},
			expected: "https://cdn.example.com/walks/a1.geojson",
		},
		{
			name:     "path style endpoint",
			store:    objectStore{defaultBucket: "routes", apiEndpoint: "https://storage.example.com"},
			expected: "https://storage.example.com/routes/walks/a1.geojson",
		},
		{
			name:     "explicit bucket",
			store:    objectStore{defaultBucket: "routes", apiEndpoint: "https://storage.example.com"},
			bucket:   "archive",
			expected: "https://storage.example.com/archive/walks/a1.geojson",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.store.objectURL(tt.store.resolve(tt.bucket), "walks/a1.geojson"))
		})
	}
}
