package models

// Wizard step bounds. Steps are strictly linear: basic info, certifications
// and skills, about sections, pricing modes, schedule, photos/review.
const (
	WizardFirstStep = 1
	WizardLastStep  = 6
)

// MaxClassPhotos caps how many photos a class may carry.
const MaxClassPhotos = 5

// WizardSession is the full state of one in-progress class creation. It lives
// in Redis only; there is no resume after expiry and no partial submission.
type WizardSession struct {
	SessionID string        `json:"sessionId"`
	GuideID   string        `json:"guideId"`
	Step      int           `json:"step"`
	Draft     ClassDraft    `json:"draft"`
	Photos    []StagedPhoto `json:"photos"`
	Err       string        `json:"error,omitempty"`
	Submitted bool          `json:"submitted"`
	ClassID   string        `json:"classId,omitempty"`
}
