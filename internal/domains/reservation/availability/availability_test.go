package availability_test

import (
	"rental/internal/domains/reservation/availability"
	"rental/internal/domains/reservation/model"
	"rental/shared/constant"
	"rental/shared/daterange"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(month time.Month, day int) time.Time {
	return time.Date(2025, month, day, 0, 0, 0, 0, time.UTC)
}

func reservation(id string, in, out time.Time, status string) model.Reservation {
	return model.Reservation{ID: id, ApartmentID: "u1", CheckIn: in, CheckOut: out, Status: status}
}

func TestDisabledDates(t *testing.T) {
	t.Run("checkout day excluded", func(t *testing.T) {
		dates := availability.DisabledDates([]model.Reservation{
			reservation("r1", date(time.September, 1), date(time.September, 4), constant.ReservationStatusPending),
		})

		assert.Equal(t, []time.Time{date(time.September, 1), date(time.September, 2), date(time.September, 3)}, dates)
	})

	t.Run("cancelled ignored, sorted and unique", func(t *testing.T) {
		dates := availability.DisabledDates([]model.Reservation{
			reservation("r2", date(time.September, 10), date(time.September, 12), constant.ReservationStatusConfirmed),
			reservation("r3", date(time.September, 1), date(time.September, 3), constant.ReservationStatusCancelled),
			reservation("r1", date(time.September, 4), date(time.September, 6), constant.ReservationStatusPending),
			reservation("r4", date(time.September, 5), date(time.September, 7), constant.ReservationStatusPending),
		})

		assert.Equal(t, []time.Time{
			date(time.September, 4),
			date(time.September, 5),
			date(time.September, 6),
			date(time.September, 10),
			date(time.September, 11),
		}, dates)
	})

	t.Run("no reservations", func(t *testing.T) {
		assert.Empty(t, availability.DisabledDates(nil))
	})
}

func TestNewCalendar(t *testing.T) {
	today := time.Date(2025, time.August, 20, 18, 45, 0, 0, time.UTC)

	calendar := availability.NewCalendar([]model.Reservation{
		reservation("r1", date(time.September, 1), date(time.September, 2), constant.ReservationStatusPending),
	}, today)

	assert.Equal(t, date(time.August, 20), calendar.DisabledBefore)
	assert.Equal(t, []time.Time{date(time.September, 1)}, calendar.DisabledDates)
}

func TestIndexConflict(t *testing.T) {
	index := availability.NewIndex([]model.Reservation{
		reservation("r1", date(time.June, 10), date(time.June, 15), constant.ReservationStatusConfirmed),
		reservation("r2", date(time.July, 1), date(time.July, 5), constant.ReservationStatusCancelled),
	})

	require.Equal(t, 1, index.Len())

	tests := []struct {
		name      string
		candidate daterange.Range
		excludeID string
		conflict  bool
	}{
		{name: "same day turnover", candidate: daterange.New(date(time.June, 15), date(time.June, 18))},
		{name: "shared night", candidate: daterange.New(date(time.June, 14), date(time.June, 20)), conflict: true},
		{name: "cancelled range is free", candidate: daterange.New(date(time.July, 1), date(time.July, 5))},
		{name: "editing itself", candidate: daterange.New(date(time.June, 11), date(time.June, 16)), excludeID: "r1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, conflict := index.Conflict(tt.candidate, tt.excludeID)

			assert.Equal(t, tt.conflict, conflict)

			if tt.conflict {
				assert.Equal(t, "r1", found.ID)
			}
		})
	}
}

func TestAvailable(t *testing.T) {
	today := date(time.June, 1)
	existing := []model.Reservation{
		reservation("r1", date(time.June, 10), date(time.June, 15), constant.ReservationStatusPending),
	}

	available, err := availability.Available(daterange.New(date(time.June, 15), date(time.June, 18)), today, 0, existing)
	require.NoError(t, err)
	assert.True(t, available)

	available, err = availability.Available(daterange.New(date(time.June, 14), date(time.June, 20)), today, 0, existing)
	require.NoError(t, err)
	assert.False(t, available)

	_, err = availability.Available(daterange.New(date(time.May, 30), date(time.June, 2)), today, 0, existing)
	assert.ErrorIs(t, err, daterange.ErrPastRange)

	_, err = availability.Available(daterange.New(date(time.June, 5), date(time.June, 5)), today, 0, existing)
	assert.ErrorIs(t, err, daterange.ErrEmptyRange)
}

func TestCheckRange(t *testing.T) {
	today := date(time.June, 1)

	tests := []struct {
		name     string
		stay     daterange.Range
		expected error
	}{
		{name: "within the limit", stay: daterange.New(date(time.June, 1), date(time.June, 15))},
		{name: "exactly the limit", stay: daterange.New(date(time.June, 1), date(time.June, 29))},
		{name: "one night too many", stay: daterange.New(date(time.June, 1), date(time.June, 30)), expected: daterange.ErrTooLong},
		{name: "thousands of years", stay: daterange.New(date(time.June, 1), time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)), expected: daterange.ErrTooLong},
		{name: "empty before length", stay: daterange.New(date(time.June, 3), date(time.June, 3)), expected: daterange.ErrEmptyRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := availability.CheckRange(tt.stay, today, 28)
			if tt.expected == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
