// Package availability turns the active reservations of an apartment into calendar data and
// conflict answers. It never touches the store: callers load reservations and pass them in.
// The answers are advisory; bookings are decided by the transactional check in the service.
package availability

import (
	"rental/internal/domains/reservation/model"
	"rental/shared/daterange"
	"rental/shared/timezone"
	"slices"
	"time"
)

// Index answers conflict queries for one apartment. The linear implementation is enough for a
// handful of reservations per apartment; an interval tree can satisfy the same interface.
type Index interface {
	// Conflict returns an active reservation overlapping candidate, ignoring excludeID.
	Conflict(candidate daterange.Range, excludeID string) (model.Reservation, bool)
	Len() int
}

type linearIndex struct {
	reservations []model.Reservation
}

// NewIndex keeps only active reservations.
func NewIndex(reservations []model.Reservation) Index {
	active := make([]model.Reservation, 0, len(reservations))

	for _, reservation := range reservations {
		if reservation.IsActive() {
			active = append(active, reservation)
		}
	}

	return &linearIndex{reservations: active}
}

func (idx *linearIndex) Conflict(candidate daterange.Range, excludeID string) (model.Reservation, bool) {
	for _, reservation := range idx.reservations {
		if excludeID != "" && reservation.ID == excludeID {
			continue
		}

		if reservation.Range().Overlaps(candidate) {
			return reservation, true
		}
	}

	return model.Reservation{}, false
}

func (idx *linearIndex) Len() int {
	return len(idx.reservations)
}

// DisabledDates lists, in ascending order and without duplicates, every night occupied by an
// active reservation. Check-out dates stay free unless another stay covers them.
func DisabledDates(reservations []model.Reservation) []time.Time {
	seen := map[time.Time]struct{}{}
	dates := []time.Time{}

	for _, reservation := range reservations {
		if !reservation.IsActive() {
			continue
		}

		for _, date := range reservation.Range().Days() {
			if _, ok := seen[date]; ok {
				continue
			}

			seen[date] = struct{}{}
			dates = append(dates, date)
		}
	}

	slices.SortFunc(dates, func(a, b time.Time) int {
		return a.Compare(b)
	})

	return dates
}

// Calendar is what a date picker disables: everything before DisabledBefore plus DisabledDates.
type Calendar struct {
	DisabledBefore time.Time
	DisabledDates  []time.Time
}

func NewCalendar(reservations []model.Reservation, today time.Time) Calendar {
	return Calendar{
		DisabledBefore: timezone.CivilDate(today),
		DisabledDates:  DisabledDates(reservations),
	}
}

// CheckRange validates the shape of a candidate stay: at least one night, at most maxNights,
// not starting before today.
func CheckRange(candidate daterange.Range, today time.Time, maxNights int) error {
	if err := candidate.Validate(today); err != nil {
		return err
	}

	return candidate.ValidateLength(maxNights)
}

// Available reports whether candidate is a valid stay that overlaps none of the reservations.
func Available(candidate daterange.Range, today time.Time, maxNights int, reservations []model.Reservation) (bool, error) {
	if err := CheckRange(candidate, today, maxNights); err != nil {
		return false, err
	}

	_, conflict := NewIndex(reservations).Conflict(candidate, "")

	return !conflict, nil
}
