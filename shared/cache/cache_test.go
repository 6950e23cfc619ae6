package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedAppointment struct {
	ID     string   `json:"id"`
	PetIDs []string `json:"pet_ids"`
}

func TestEncodeDecode(t *testing.T) {
	t.Run("string is stored verbatim", func(t *testing.T) {
		raw, err := encode("scheduled")
		require.NoError(t, err)
		assert.Equal(t, []byte("scheduled"), raw)

		var out string
		require.NoError(t, decode(raw, &out))
		assert.Equal(t, "scheduled", out)
	})

	t.Run("struct is stored as json", func(t *testing.T) {
		raw, err := encode(cachedAppointment{ID: "a1", PetIDs: []string{"p1", "p2"}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"a1","pet_ids":["p1","p2"]}`, string(raw))

		var out cachedAppointment
		require.NoError(t, decode(raw, &out))
		assert.Equal(t, cachedAppointment{ID: "a1", PetIDs: []string{"p1", "p2"}}, out)
	})

	t.Run("unencodable value", func(t *testing.T) {
		_, err := encode(make(chan int))
		require.Error(t, err)
	})

	t.Run("corrupt entry", func(t *testing.T) {
		var out cachedAppointment
		require.Error(t, decode([]byte("{not json"), &out))
	})
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, 90*time.Second, seconds(90))
	assert.Equal(t, time.Duration(0), seconds(0))
}
