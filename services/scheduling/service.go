package scheduling

import (
	"context"

	"cuidarte/models"
	"cuidarte/services/notification"
	"cuidarte/utils"

	"go.uber.org/zap"
)

// BookTestimonial runs the full booking flow: occupancy scan, slot
// allocation, page creation and the best-effort Slack sideband.
func (s *DefaultSchedulingService) BookTestimonial(ctx context.Context, req models.TestimonialRequest) (*models.TestimonialBooking, error) {
	logger := utils.GetLogger()

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := s.now()
	occupied, err := s.occupiedDates(ctx, now)
	if err != nil {
		return nil, err
	}
	logger.Info("Occupancy window resolved",
		zap.String("client", req.ClientName),
		zap.Int("occupiedDates", len(occupied)))

	date := NextAvailableSlot(occupied, now)

	page, err := s.publishEntry(ctx, req, date)
	if err != nil {
		return nil, err
	}
	logger.Info("Calendar page created",
		zap.String("client", req.ClientName),
		zap.String("date", date),
		zap.String("pageID", page.ID))

	// Fire-and-forget: sideband failures never reach the caller.
	if s.Dispatcher != nil {
		s.Dispatcher.Dispatch(notification.TestimonialBooked{
			ClientName: req.ClientName,
			CoachName:  req.CoachName,
			TypeLabel:  TypeLabel(req.Type),
			Date:       date,
			NotionURL:  page.URL,
			MediaURL:   req.MediaURL,
		})
	}

	return &models.TestimonialBooking{
		Date:         date,
		NotionPageID: page.ID,
		NotionURL:    page.URL,
	}, nil
}
