package cache

import "time"

// NextDaily returns the next time after now at which the local wall clock
// reads hour:00, in now's location. If now is exactly on the hour, the
// following day is returned so the result is always strictly in the future.
func NextDaily(now time.Time, hour int) time.Time {
	t := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !t.After(now) {
		t = time.Date(now.Year(), now.Month(), now.Day()+1, hour, 0, 0, 0, now.Location())
	}
	return t
}
