package scheduling

import (
	"context"
	"time"

	"cuidarte/models"
	"cuidarte/notion"
	"cuidarte/services/notification"
)

// SchedulingService books a testimonial into the content calendar.
type SchedulingService interface {
	BookTestimonial(ctx context.Context, req models.TestimonialRequest) (*models.TestimonialBooking, error)
}

// DefaultSchedulingService implements SchedulingService against the
// Notion content calendar.
type DefaultSchedulingService struct {
	Notion     *notion.Client
	DatabaseID string
	AssigneeID string
	Dispatcher notification.Dispatcher
	Now        func() time.Time // overridable clock
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
