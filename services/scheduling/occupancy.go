package scheduling

import (
	"context"
	"fmt"
	"time"

	"cuidarte/notion"
)

// occupancyWindowDays is the forward span scanned for already-booked dates.
const occupancyWindowDays = 60

// occupiedDates queries the calendar for entries dated within
// [now, now+60d] and collects the distinct dates already holding one.
// The set is request-scoped and never cached across bookings.
func (s *DefaultSchedulingService) occupiedDates(ctx context.Context, now time.Time) (map[string]bool, error) {
	filter := notion.DateFilter{
		Property: notion.PropDate,
		Date: notion.DateCondition{
			OnOrAfter:  now.Format(dateLayout),
			OnOrBefore: now.AddDate(0, 0, occupancyWindowDays).Format(dateLayout),
		},
	}

	resp, err := s.Notion.QueryDatabase(ctx, s.DatabaseID, filter)
	if err != nil {
		return nil, fmt.Errorf("occupancy query failed: %w", err)
	}

	occupied := make(map[string]bool, len(resp.Results))
	for _, page := range resp.Results {
		if d := page.DateStart(notion.PropDate); d != "" {
			occupied[d] = true
		}
	}
	return occupied, nil
}
