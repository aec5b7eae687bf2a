package notification

// TestimonialBooked is the summary pushed to the team channel after a
// successful booking.
type TestimonialBooked struct {
	ClientName string `json:"clientName"`
	CoachName  string `json:"coachName"`
	TypeLabel  string `json:"typeLabel"`
	Date       string `json:"date"`
	NotionURL  string `json:"notionUrl"`
	MediaURL   string `json:"mediaUrl"`
}

// Dispatcher hands a booking summary to the notification sideband.
// Implementations are fire-and-forget: delivery failures are logged,
// never returned to the booking path.
type Dispatcher interface {
	Dispatch(event TestimonialBooked)
}
