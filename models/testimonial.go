package models

// Supported testimonial media types. Unknown types are accepted and
// labeled with the fallback tag.
const (
	ContentTypeVideo = "video"
	ContentTypeImage = "image"
	ContentTypeText  = "text"
	ContentTypeAudio = "audio"
)

// TestimonialRequest is the booking payload submitted by the CRM.
type TestimonialRequest struct {
	ClientName string `json:"clientName"`
	CoachName  string `json:"coachName"`
	MediaURL   string `json:"mediaUrl"`
	Type       string `json:"type"`
	Notes      string `json:"notes"`
}

// TestimonialBooking is the outcome of a successful booking.
type TestimonialBooking struct {
	Date         string `json:"date"`
	NotionPageID string `json:"notionPageId"`
	NotionURL    string `json:"notionUrl"`
}
