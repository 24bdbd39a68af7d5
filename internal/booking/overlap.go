package booking

import "time"

// Interval is an inclusive calendar date range held by an existing booking.
type Interval struct {
	BookingID int64
	Status    Status
	Start     time.Time
	End       time.Time
}

// Overlaps reports whether the candidate [start, end] range shares at least
// one calendar day with the interval. Bounds are inclusive on both sides:
// a booking ending on day D conflicts with one starting on day D, while one
// starting on day D+1 does not.
func (iv Interval) Overlaps(start, end time.Time) bool {
	return !iv.Start.After(end) && !iv.End.Before(start)
}

// HasConflict reports whether any interval overlaps the candidate range.
// excludeID ignores the booking's own interval during edit-in-place checks;
// pass 0 to check against all intervals.
func HasConflict(intervals []Interval, start, end time.Time, excludeID int64) bool {
	for _, iv := range intervals {
		if iv.BookingID == excludeID {
			continue
		}
		if iv.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// LatestApprovedEnd returns the latest end date among approved intervals,
// or nil if none are approved.
func LatestApprovedEnd(intervals []Interval) *time.Time {
	var latest *time.Time
	for _, iv := range intervals {
		if iv.Status != StatusApproved {
			continue
		}
		if latest == nil || iv.End.After(*latest) {
			end := iv.End
			latest = &end
		}
	}
	return latest
}
