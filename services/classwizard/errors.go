package classwizard

import "fmt"

// WizardError reports a blocked transition or rejected edit. These errors are
// terminal for the attempt; the client corrects the draft and retries.
type WizardError struct {
	Code    string
	Message string
}

func (e *WizardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewWizardError(msg string) error {
	return &WizardError{
		Code:    "wizardError",
		Message: msg,
	}
}

// IncompleteStepMessage is the generic gating message shown when a step's
// required fields are not all filled.
const IncompleteStepMessage = "Please fill all required fields before continuing"

// ErrTooManyPhotos rejects a photo batch that would exceed the cap. The whole
// batch is refused; nothing is truncated silently.
var ErrTooManyPhotos = NewWizardError("You can upload a maximum of 5 photos")
