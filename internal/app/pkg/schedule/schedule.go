// Package schedule computes reminder due instants. This is a read-time
// calculation, not a dispatcher.
package schedule

import "time"

// NextOccurrence returns the nearest future instant carrying the given
// time-of-day ("HH:MM"): today if that instant is still strictly ahead of now,
// otherwise tomorrow. Unset or unparseable input yields nil.
func NextOccurrence(timeOfDay string, now time.Time) *time.Time {
	if timeOfDay == "" {
		return nil
	}
	tod, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return nil
	}
	next := time.Date(now.Year(), now.Month(), now.Day(),
		tod.Hour(), tod.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return &next
}
