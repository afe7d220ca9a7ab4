package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// Extraction error taxonomy. Structural failures abort the whole call;
// individual missing fields never do.
var (
	// ErrEmptyInput: no extractable text (likely an image-only scan upstream).
	ErrEmptyInput = errors.New("no extractable text")
	// ErrInvalidDocument: the text is not an internship convention.
	ErrInvalidDocument = errors.New("document is not an internship convention")
	// ErrTimeout: the completion request exceeded its time budget.
	ErrTimeout = errors.New("completion request timed out")
	// ErrTransport: network failure or non-success completion status.
	ErrTransport = errors.New("completion request failed")
	// ErrEmptyCompletion: the model returned no content.
	ErrEmptyCompletion = errors.New("empty model response")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
