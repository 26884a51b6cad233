// Package timezone keeps the application clock in the property's timezone.
//
// Instants (created_at, modified_at) are produced with Now and rendered with Format. Calendar
// dates (check-in, check-out, today) carry no time of day: they are stored as midnight UTC of
// the local wall-clock date, see CivilDate and Today.
//
// The location comes from APP_TIMEZONE, an IANA name such as "Asia/Jakarta", and is loaded on
// first use. Unknown names fall back to UTC.
package timezone
