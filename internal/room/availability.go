package room

import "time"

// ProjectAvailableFrom computes a room's effective earliest bookable date:
// the later of the configured available-from date and the day after the
// latest approved booking end date. latestApprovedEnd is nil when the room
// has no approved bookings.
func ProjectAvailableFrom(staticFrom time.Time, latestApprovedEnd *time.Time) time.Time {
	if latestApprovedEnd == nil {
		return staticFrom
	}
	dayAfter := latestApprovedEnd.AddDate(0, 0, 1)
	if dayAfter.After(staticFrom) {
		return dayAfter
	}
	return staticFrom
}
