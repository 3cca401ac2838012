package booking

import "fmt"

// ValidationError reports a selection that violates the configurator's rules.
// It is never retried; the client corrects the selection and tries again.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// ErrNoDateRange is surfaced when book-now is attempted without a package
// selection. The message is the guidance text the client shows verbatim.
var ErrNoDateRange = NewValidationError("Please select a date package before booking")
