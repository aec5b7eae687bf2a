package handlers

import (
	"net/http"

	"cuidarte/models"
	"cuidarte/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TestimonialHandler exposes the booking endpoint.
type TestimonialHandler struct {
	Scheduler scheduling.SchedulingService
}

func NewTestimonialHandler(scheduler scheduling.SchedulingService) *TestimonialHandler {
	return &TestimonialHandler{Scheduler: scheduler}
}

// BookTestimonialHandler allocates a calendar slot and creates the
// Notion page for a submitted testimonial.
func (h *TestimonialHandler) BookTestimonialHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid testimonial request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body: " + err.Error()})
		return
	}

	logger.Info("Processing testimonial booking", zap.String("client", req.ClientName))

	booking, err := h.Scheduler.BookTestimonial(c.Request.Context(), req)
	if err != nil {
		logger.Error("Testimonial booking failed",
			zap.String("client", req.ClientName), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Nueva ficha creada en Notion",
		"date":         booking.Date,
		"notionUrl":    booking.NotionURL,
		"notionPageId": booking.NotionPageID,
	})
}
