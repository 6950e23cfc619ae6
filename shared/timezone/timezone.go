// Package timezone pins wall-clock values (audit timestamps, default holiday year)
// to the zone configured in APP_TIMEZONE. Calendar dates on appointments are
// plain dates and do not go through here.
package timezone

import (
	"petcare/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultZone = "UTC"

var (
	location *time.Location
	once     sync.Once
)

// Location loads the configured zone on first use; an unknown name falls back to UTC.
func Location() *time.Location {
	once.Do(func() {
		name := config.Get().App.Timezone
		if name == "" {
			name = defaultZone
		}

		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

			location = time.UTC

			return
		}

		location = loc

		log.Debug().Str("timezone", loc.String()).Msg("Application timezone initialized")
	})

	return location
}

func Now() time.Time {
	return time.Now().In(Location())
}

func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
