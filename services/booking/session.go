package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"urbanpilgrim/models"
	"urbanpilgrim/utils"
)

// StartSession loads the experience and creates a session with a defaulted
// selection (first future-dated package, first offered occupancy, quantity 1).
func (s *DefaultSessionService) StartSession(experienceID string) (*models.BookingSession, error) {
	exp, err := s.Repo.GetByID(experienceID)
	if err != nil {
		utils.GetLogger().Error("StartSession: failed to load experience", zap.Error(err))
		return nil, fmt.Errorf("failed to load experience: %w", err)
	}
	if exp == nil {
		return nil, NewValidationError("experience not found")
	}

	session := &models.BookingSession{
		SessionID:    uuid.New().String(),
		ExperienceID: experienceID,
		Selection:    NewSelection(exp, time.Now()),
	}
	if err := s.save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession fetches a live session by ID.
func (s *DefaultSessionService) GetSession(sessionID string) (*models.BookingSession, error) {
	return s.load(sessionID)
}

// SelectDateRange sets the selected package window.
func (s *DefaultSessionService) SelectDateRange(sessionID string, r models.DateRange) (*models.BookingSession, error) {
	return s.mutate(sessionID, func(exp *models.Experience, sel *models.BookingSelection) error {
		return ApplyDateRange(exp, sel, r)
	})
}

// SelectOccupancy sets the occupancy type.
func (s *DefaultSessionService) SelectOccupancy(sessionID string, o models.Occupancy) (*models.BookingSession, error) {
	return s.mutate(sessionID, func(exp *models.Experience, sel *models.BookingSelection) error {
		return ApplyOccupancy(exp, sel, o)
	})
}

// ChangeQuantity adjusts quantity by delta, floored at 1.
func (s *DefaultSessionService) ChangeQuantity(sessionID string, delta int) (*models.BookingSession, error) {
	return s.mutate(sessionID, func(exp *models.Experience, sel *models.BookingSelection) error {
		ChangeQuantity(sel, delta)
		return nil
	})
}

// Quote returns the derived price snapshot for the session.
func (s *DefaultSessionService) Quote(sessionID string) (*models.BookingQuote, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	exp, err := s.experience(session.ExperienceID)
	if err != nil {
		return nil, err
	}
	quote := Quote(exp, &session.Selection)
	return &quote, nil
}

// BookNow produces the hand-off URL for the session's selection. With no
// package selected it fails with the guidance message; for unauthenticated
// callers the review URL is wrapped in a login redirect so the selection
// survives the round trip.
func (s *DefaultSessionService) BookNow(sessionID string, authenticated bool) (string, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return "", err
	}

	reviewURL, err := ReviewURL(s.WebBaseURL, session.ExperienceID, &session.Selection)
	if err != nil {
		return "", err
	}
	if !authenticated {
		return LoginRedirectURL(s.WebBaseURL, reviewURL), nil
	}
	return reviewURL, nil
}

// mutate loads the session and its experience, applies fn to the selection,
// and saves the session back. A validation failure leaves the stored session
// untouched.
func (s *DefaultSessionService) mutate(sessionID string, fn func(*models.Experience, *models.BookingSelection) error) (*models.BookingSession, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	exp, err := s.experience(session.ExperienceID)
	if err != nil {
		return nil, err
	}
	if err := fn(exp, &session.Selection); err != nil {
		return nil, err
	}
	if err := s.save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultSessionService) experience(id string) (*models.Experience, error) {
	exp, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load experience: %w", err)
	}
	if exp == nil {
		return nil, NewValidationError("experience not found")
	}
	return exp, nil
}

func (s *DefaultSessionService) save(session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ctx := context.Background()
	key := utils.BookingSessionPrefix + session.SessionID
	if err := s.Cache.Set(ctx, key, data, utils.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

func (s *DefaultSessionService) load(sessionID string) (*models.BookingSession, error) {
	ctx := context.Background()
	data, err := s.Cache.Get(ctx, utils.BookingSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, NewValidationError("booking session not found or expired")
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}
