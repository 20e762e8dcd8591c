// Package error defines domain-specific errors for the finance ledger.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the store.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryAlreadyExists is returned when a category with the same
	// name and kind already exists.
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// ErrInvalidCategoryName is returned when the category name is empty or
	// exceeds the maximum length after trimming.
	ErrInvalidCategoryName = errors.New("invalid category name")

	// ErrInvalidKind is returned when the kind is neither income nor expense.
	ErrInvalidKind = errors.New("invalid category kind")

	// ErrUnknownIcon is returned when the icon is not in the fixed icon set.
	ErrUnknownIcon = errors.New("unknown icon")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCategoryName   CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidKind           CategoryErrorCode = "CAT-010002"
	ErrCodeUnknownIcon           CategoryErrorCode = "CAT-010003"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010004"

	// Conflict errors (02XXXX)
	ErrCodeCategoryExists CategoryErrorCode = "CAT-020001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
