package booking

import (
	experienceRepo "urbanpilgrim/database/repository/experience"
	"urbanpilgrim/models"

	"github.com/go-redis/redis/v8"
)

// SessionService drives a booking-configurator session for one experience.
type SessionService interface {
	// StartSession creates a session with a defaulted selection.
	StartSession(experienceID string) (*models.BookingSession, error)
	// GetSession fetches a live session by ID.
	GetSession(sessionID string) (*models.BookingSession, error)
	// SelectDateRange sets the selected package window.
	SelectDateRange(sessionID string, r models.DateRange) (*models.BookingSession, error)
	// SelectOccupancy sets the occupancy type.
	SelectOccupancy(sessionID string, o models.Occupancy) (*models.BookingSession, error)
	// ChangeQuantity adjusts quantity by delta, floored at 1.
	ChangeQuantity(sessionID string, delta int) (*models.BookingSession, error)
	// Quote returns the derived price snapshot for the session.
	Quote(sessionID string) (*models.BookingQuote, error)
	// BookNow produces the hand-off URL, wrapped in a login redirect when the
	// caller is unauthenticated.
	BookNow(sessionID string, authenticated bool) (string, error)
}

// DefaultSessionService is the production implementation backed by the
// experience repository and a Redis session store.
type DefaultSessionService struct {
	Repo  experienceRepo.ExperienceRepository
	Cache *redis.Client
	// WebBaseURL prefixes the hand-off URLs produced by BookNow.
	WebBaseURL string
}
