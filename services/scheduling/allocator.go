package scheduling

import "time"

const (
	dateLayout = "2006-01-02"

	// searchWeeks bounds the slot scan to a 12-week horizon.
	searchWeeks = 12
)

// priorityWeekdays is the fixed preference order used to pick among
// free days within a week.
var priorityWeekdays = []time.Weekday{time.Wednesday, time.Sunday, time.Monday, time.Friday}

// NextAvailableSlot picks the earliest free future date under the
// weekday priority rotation. Weeks are scanned in increasing order
// starting from the Monday of the current week; within a week the
// priority order is absolute. Today never qualifies, only strictly
// future days do.
//
// When every priority day in the whole horizon is occupied the
// function falls back to tomorrow WITHOUT consulting the occupancy
// set, so the fallback can double-book. Shipping a slot was preferred
// over failing the request; the behavior is kept deliberately.
func NextAvailableSlot(occupied map[string]bool, now time.Time) string {
	today := now.Format(dateLayout)
	monday0 := startOfWeek(now)

	for weekOffset := 0; weekOffset < searchWeeks; weekOffset++ {
		for _, weekday := range priorityWeekdays {
			candidate := monday0.AddDate(0, 0, weekOffset*7+offsetFromMonday(weekday))
			dateStr := candidate.Format(dateLayout)
			// ISO dates compare correctly as strings.
			if dateStr <= today {
				continue
			}
			if !occupied[dateStr] {
				return dateStr
			}
		}
	}

	return now.AddDate(0, 0, 1).Format(dateLayout)
}

// startOfWeek returns midnight on the Monday of the week containing t.
// Sunday belongs to the preceding Monday's week.
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	diff := int(day.Weekday()) - int(time.Monday) // Sunday is 0
	if diff < 0 {
		diff += 7
	}
	return day.AddDate(0, 0, -diff)
}

// offsetFromMonday maps a weekday to its day offset within a
// Monday-started week (Sunday counts as 6).
func offsetFromMonday(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d) - 1
}
