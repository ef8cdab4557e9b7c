package domain

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching intervals (aEnd == bStart) do not
// overlap, so back-to-back bookings are admissible.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// OverlapsWindow reports whether the booking's interval intersects the
// given half-open window.
func (b *Booking) OverlapsWindow(start, end time.Time) bool {
	return Overlaps(b.StartTime, b.EndTime, start, end)
}
