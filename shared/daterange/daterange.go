// Package daterange implements half-open calendar-day intervals. Every overlap decision in the
// service, whether in SQL, the availability calendar or the booking check, reduces to Overlaps.
package daterange

import (
	"errors"
	"fmt"
	"rental/shared/constant"
	"rental/shared/timezone"
	"time"
)

const secondsPerDay = 24 * 60 * 60

var (
	ErrEmptyRange = errors.New("check-out must be after check-in")
	ErrPastRange  = errors.New("check-in must not be in the past")
	ErrTooLong    = errors.New("stay is too long")
)

// Range is the half-open interval [CheckIn, CheckOut) of calendar days.
type Range struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// New truncates both bounds to their calendar date.
func New(checkIn, checkOut time.Time) Range {
	return Range{
		CheckIn:  timezone.CivilDate(checkIn),
		CheckOut: timezone.CivilDate(checkOut),
	}
}

// Parse reads both bounds in YYYY-MM-DD form.
func Parse(checkIn, checkOut string) (Range, error) {
	in, err := time.Parse(constant.DateOnlyFormat, checkIn)
	if err != nil {
		return Range{}, fmt.Errorf("invalid check-in %q: %w", checkIn, err)
	}

	out, err := time.Parse(constant.DateOnlyFormat, checkOut)
	if err != nil {
		return Range{}, fmt.Errorf("invalid check-out %q: %w", checkOut, err)
	}

	return New(in, out), nil
}

// Overlaps reports whether r and other share at least one night.
func (r Range) Overlaps(other Range) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// Contains reports whether the night starting on date is inside r.
func (r Range) Contains(date time.Time) bool {
	date = timezone.CivilDate(date)

	return !date.Before(r.CheckIn) && date.Before(r.CheckOut)
}

func (r Range) Nights() int {
	if !r.CheckIn.Before(r.CheckOut) {
		return 0
	}

	return int(dayNumber(r.CheckOut) - dayNumber(r.CheckIn))
}

// dayNumber counts calendar days since the Unix epoch. It stays exact where a time.Duration
// between the bounds would saturate.
func dayNumber(t time.Time) int64 {
	year, month, date := t.Date()

	return time.Date(year, month, date, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

// Days lists every occupied date. The check-out date is free for a new check-in and is not listed.
func (r Range) Days() []time.Time {
	days := make([]time.Time, 0, r.Nights())

	for date := r.CheckIn; date.Before(r.CheckOut); date = date.AddDate(0, 0, 1) {
		days = append(days, date)
	}

	return days
}

// Validate checks that the range spans at least one night. A zero today skips the past check.
func (r Range) Validate(today time.Time) error {
	if !r.CheckIn.Before(r.CheckOut) {
		return ErrEmptyRange
	}

	if !today.IsZero() && r.CheckIn.Before(timezone.CivilDate(today)) {
		return ErrPastRange
	}

	return nil
}

// ValidateLength rejects stays longer than maxNights. A non-positive maxNights allows any length.
func (r Range) ValidateLength(maxNights int) error {
	if maxNights > 0 && r.Nights() > maxNights {
		return fmt.Errorf("%w: at most %d nights", ErrTooLong, maxNights)
	}

	return nil
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.CheckIn.Format(constant.DateOnlyFormat), r.CheckOut.Format(constant.DateOnlyFormat))
}
