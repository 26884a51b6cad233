package timezone

import (
	"sync"
	"sync/atomic"
	"time"

	"rental/config"

	"github.com/rs/zerolog/log"
)

var (
	override atomic.Pointer[time.Location]

	configured = sync.OnceValue(func() *time.Location {
		return Load(config.Get().App.Timezone)
	})
)

// Load resolves an IANA timezone name, falling back to UTC.
func Load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// Use replaces the configured location. A nil location restores it.
func Use(loc *time.Location) {
	override.Store(loc)
}

// GetLocation returns the application timezone.
func GetLocation() *time.Location {
	if loc := override.Load(); loc != nil {
		return loc
	}

	return configured()
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone.
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse parses a wall-clock value in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Today returns the current calendar date in the application timezone as a UTC midnight value,
// which is how reservation dates are stored and compared.
func Today() time.Time {
	return CivilDate(Now())
}

// CivilDate drops the time of day of t, keeping the wall-clock date of t's own location.
func CivilDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
