package service

import "time"

// SetToday pins the date the service treats as today.
func SetToday(svc Reservation, today func() time.Time) {
	svc.(*serviceImpl).today = today
}
