package contract

import "errors"

// ValidationError is reported to the caller as-is with a 400 status.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

var (
	ErrNoFile       = &ValidationError{Reason: "No file uploaded"}
	ErrInvalidType  = &ValidationError{Reason: "Invalid file type"}
	ErrTooLarge     = &ValidationError{Reason: "File too large"}
	ErrEmptyContent = &ValidationError{Reason: "Empty file content"}
)

// AsValidationError unwraps err to a *ValidationError if there is one in the chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
