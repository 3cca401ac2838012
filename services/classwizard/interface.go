package classwizard

import (
	"context"

	"github.com/go-redis/redis/v8"

	classRepo "urbanpilgrim/database/repository/wellnessclass"
	"urbanpilgrim/models"
	"urbanpilgrim/services/storage"
)

// WizardService drives a class-creation wizard session for one guide.
type WizardService interface {
	// StartSession creates a fresh session at step 1.
	StartSession(guideID string) (*models.WizardSession, error)
	// GetSession fetches a live session by ID.
	GetSession(sessionID string) (*models.WizardSession, error)
	// UpdateDraft merges edited draft fields into the session.
	UpdateDraft(sessionID string, draft models.ClassDraft) (*models.WizardSession, error)
	// Next advances one step if the current step validates.
	Next(sessionID string) (*models.WizardSession, error)
	// Prev moves back one step; always allowed.
	Prev(sessionID string) (*models.WizardSession, error)
	// StagePhotos uploads a photo batch and attaches it to the session,
	// rejecting batches that would exceed the cap.
	StagePhotos(ctx context.Context, sessionID string, paths []string) (*models.WizardSession, error)
	// Submit validates the complete draft and creates the class exactly once.
	Submit(ctx context.Context, sessionID string) (*models.WellnessClass, error)
	// Reset returns a submitted session to step 1 for another class.
	Reset(sessionID string) (*models.WizardSession, error)
}

// DefaultWizardService is the production implementation backed by the class
// repository, the photo storage service, and a Redis session store.
type DefaultWizardService struct {
	Classes classRepo.ClassRepository
	Storage storage.StorageService
	Cache   *redis.Client
}
