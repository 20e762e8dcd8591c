// Package error defines domain-specific errors for the finance ledger.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrEmptyTitle is returned when the transaction title is empty.
	ErrEmptyTitle = errors.New("transaction title must not be empty")

	// ErrNonPositiveAmount is returned when the amount is zero or negative.
	ErrNonPositiveAmount = errors.New("transaction amount must be positive")

	// ErrInvalidDate is returned when the transaction date cannot be parsed.
	ErrInvalidDate = errors.New("invalid transaction date")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TX-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyTitle               TransactionErrorCode = "TX-010001"
	ErrCodeNonPositiveAmount        TransactionErrorCode = "TX-010002"
	ErrCodeInvalidTransactionKind   TransactionErrorCode = "TX-010003"
	ErrCodeInvalidDate              TransactionErrorCode = "TX-010004"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TX-010005"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
