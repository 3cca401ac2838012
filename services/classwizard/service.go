package classwizard

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"urbanpilgrim/models"
	"urbanpilgrim/utils"
)

// photoFolder is the Cloudinary folder staged class photos land in.
const photoFolder = "wellness-classes"

// StartSession creates a fresh wizard session at step 1 with a default draft.
func (s *DefaultWizardService) StartSession(guideID string) (*models.WizardSession, error) {
	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		GuideID:   guideID,
		Step:      models.WizardFirstStep,
		Draft:     NewDraft(),
	}
	if err := s.save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession fetches a live session by ID.
func (s *DefaultWizardService) GetSession(sessionID string) (*models.WizardSession, error) {
	return s.load(sessionID)
}

// UpdateDraft replaces the session's draft with the edited one. Draft edits
// are step-local in the UI but arrive whole here; validation happens at the
// step gates, not on every keystroke.
func (s *DefaultWizardService) UpdateDraft(sessionID string, draft models.ClassDraft) (*models.WizardSession, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, NewWizardError("class already submitted; reset the wizard to start another")
	}
	session.Draft = draft
	if err := s.save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Next advances one step if the current step's predicate holds.
func (s *DefaultWizardService) Next(sessionID string) (*models.WizardSession, error) {
	return s.transition(sessionID, Next)
}

// Prev moves back one step; always allowed.
func (s *DefaultWizardService) Prev(sessionID string) (*models.WizardSession, error) {
	return s.transition(sessionID, Prev)
}

func (s *DefaultWizardService) transition(sessionID string, fn func(*models.WizardSession)) (*models.WizardSession, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, NewWizardError("class already submitted; reset the wizard to start another")
	}
	fn(session)
	if err := s.save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// StagePhotos uploads a batch of photos and attaches them to the session.
// The batch is checked against the cap before any upload happens, so a
// rejected batch leaves no orphaned files behind.
func (s *DefaultWizardService) StagePhotos(ctx context.Context, sessionID string, paths []string) (*models.WizardSession, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, NewWizardError("class already submitted; reset the wizard to start another")
	}
	if len(session.Photos)+len(paths) > models.MaxClassPhotos {
		return nil, ErrTooManyPhotos
	}

	staged := make([]models.StagedPhoto, 0, len(paths))
	for _, path := range paths {
		publicID, url, err := s.Storage.UploadFile(ctx, path, photoFolder)
		if err != nil {
			utils.GetLogger().Error("StagePhotos: upload failed", zap.Error(err))
			return nil, fmt.Errorf("failed to upload photo: %w", err)
		}
		staged = append(staged, models.StagedPhoto{
			PublicID: publicID,
			URL:      url,
			Filename: filepath.Base(path),
		})
	}

	if err := StagePhotos(session, staged); err != nil {
		return nil, err
	}
	if err := s.save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit validates the complete draft and creates the class exactly once.
// On a repository failure the session stays on step 6 with the error recorded
// so the guide can correct and retry.
func (s *DefaultWizardService) Submit(ctx context.Context, sessionID string) (*models.WellnessClass, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, NewWizardError("class already submitted; reset the wizard to start another")
	}
	if session.Step != models.WizardLastStep {
		return nil, NewWizardError("submit is only available from the final step")
	}
	if !ValidateAll(&session.Draft) {
		session.Err = IncompleteStepMessage
		_ = s.save(session)
		return nil, NewWizardError(IncompleteStepMessage)
	}

	urls := make([]string, 0, len(session.Photos))
	for _, p := range session.Photos {
		urls = append(urls, p.URL)
	}

	class := &models.WellnessClass{
		ID:        uuid.New().String(),
		GuideID:   session.GuideID,
		Status:    models.ClassStatusPendingReview,
		Draft:     session.Draft,
		PhotoURLs: urls,
	}
	if err := s.Classes.Create(class); err != nil {
		session.Err = err.Error()
		_ = s.save(session)
		return nil, fmt.Errorf("failed to create class: %w", err)
	}

	session.Submitted = true
	session.ClassID = class.ID
	session.Err = ""
	if err := s.save(session); err != nil {
		return nil, err
	}
	return class, nil
}

// Reset returns the session to step 1 with a fresh draft so the guide can
// create another class.
func (s *DefaultWizardService) Reset(sessionID string) (*models.WizardSession, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	Reset(session)
	if err := s.save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultWizardService) save(session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	ctx := context.Background()
	key := utils.WizardSessionPrefix + session.SessionID
	if err := s.Cache.Set(ctx, key, data, utils.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache wizard session: %w", err)
	}
	return nil
}

func (s *DefaultWizardService) load(sessionID string) (*models.WizardSession, error) {
	ctx := context.Background()
	data, err := s.Cache.Get(ctx, utils.WizardSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, NewWizardError("wizard session not found or expired")
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}
