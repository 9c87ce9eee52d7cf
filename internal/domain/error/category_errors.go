// Package error defines domain-specific errors for the FundFlow application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the registry.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryAlreadyExists is returned when a category with the same name exists.
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// ErrInvalidCategoryName is returned when the category name is empty.
	ErrInvalidCategoryName = errors.New("invalid category name")

	// ErrInvalidCategoryType is returned when the type is neither income nor expense.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrCategoryInUse is returned when deleting a category referenced by budgets or transactions.
	ErrCategoryInUse = errors.New("category is in use")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryAlreadyExists CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidCategoryName   CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidCategoryType   CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryInUse         CategoryErrorCode = "CAT-010005"
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
