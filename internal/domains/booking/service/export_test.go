package service

import "time"

// SetClock replaces the wall clock of a booking service built by New.
func SetClock(svc Booking, now func() time.Time) {
	svc.(*serviceImpl).now = now
}
