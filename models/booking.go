package models

// BookingSelection is a user's in-progress configuration for one experience:
// which package window, which occupancy, and how many rooms/sessions.
type BookingSelection struct {
	SelectedDateRange *DateRange `json:"selectedDateRange"`
	Occupancy         Occupancy  `json:"occupancy"`
	Quantity          int        `json:"quantity"`
}

// BookingSession holds a configurator's state between requests. It lives in
// Redis for the lifetime of the page visit and is never persisted; the only
// durable output is the hand-off URL produced by book-now.
type BookingSession struct {
	SessionID    string           `json:"sessionId"`
	ExperienceID string           `json:"experienceId"`
	Selection    BookingSelection `json:"selection"`
}

// BookingQuote is the derived price snapshot served alongside a session.
type BookingQuote struct {
	PerNight *float64 `json:"perNight"` // nil means "price on request"
	Nights   int      `json:"nights"`
	Quantity int      `json:"quantity"`
	Total    float64  `json:"total"`
}
