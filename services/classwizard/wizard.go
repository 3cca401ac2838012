package classwizard

import (
	"urbanpilgrim/models"
)

// NewDraft returns the wizard's initial draft: empty fields with one blank
// about-section row and one blank entry per credential list, ready to fill.
func NewDraft() models.ClassDraft {
	return models.ClassDraft{
		GuideCertifications: []string{""},
		SkillsToLearn:       []string{""},
		AboutSections:       []models.AboutSection{{}},
		Tags:                []string{},
	}
}

// Next advances the session to the following step if the current step's
// predicate holds; otherwise it records the generic gating message and stays.
// The step index never exceeds the last step.
func Next(s *models.WizardSession) {
	if !ValidateStep(&s.Draft, s.Step) {
		s.Err = IncompleteStepMessage
		return
	}
	s.Err = ""
	if s.Step < models.WizardLastStep {
		s.Step++
	}
}

// Prev is always allowed. It moves back one step, floored at the first step,
// and clears any error.
func Prev(s *models.WizardSession) {
	s.Err = ""
	if s.Step > models.WizardFirstStep {
		s.Step--
	}
}

// Reset returns the session to step 1 with a fresh draft, keeping the session
// alive so the guide can create another class.
func Reset(s *models.WizardSession) {
	s.Step = models.WizardFirstStep
	s.Draft = NewDraft()
	s.Photos = nil
	s.Err = ""
	s.Submitted = false
	s.ClassID = ""
}

// StagePhotos appends a batch of uploaded photos. A batch that would push the
// total past the cap is rejected whole; nothing is kept from it.
func StagePhotos(s *models.WizardSession, photos []models.StagedPhoto) error {
	if len(s.Photos)+len(photos) > models.MaxClassPhotos {
		return ErrTooManyPhotos
	}
	s.Photos = append(s.Photos, photos...)
	return nil
}

// Index-addressed array editing, shared by the certification, skill,
// about-section and time-slot lists. Removal may empty a list; the step
// predicates are what block progress afterwards.

// AddItem appends v to the list.
func AddItem[T any](list []T, v T) []T {
	return append(list, v)
}

// UpdateItem replaces the element at i. Out-of-range indexes are ignored.
func UpdateItem[T any](list []T, i int, v T) []T {
	if i < 0 || i >= len(list) {
		return list
	}
	list[i] = v
	return list
}

// RemoveItem drops the element at i. Out-of-range indexes are ignored.
func RemoveItem[T any](list []T, i int) []T {
	if i < 0 || i >= len(list) {
		return list
	}
	return append(list[:i], list[i+1:]...)
}
