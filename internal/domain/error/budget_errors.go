// Package error defines domain-specific errors for the FundFlow application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found or not owned by the caller.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrNoBudgetsFound is returned when a user has no budgets.
	ErrNoBudgetsFound = errors.New("no budgets found")

	// ErrBudgetAlreadyExists is returned when a budget already exists for the category.
	ErrBudgetAlreadyExists = errors.New("budget already exists for this category")

	// ErrInvalidBudgetCategory is returned when the category does not exist or is inactive.
	ErrInvalidBudgetCategory = errors.New("invalid budget category")

	// ErrInvalidBudgetAmount is returned when the budget amount is zero or negative.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")

	// ErrInvalidBudgetDuration is returned when the budget duration is unsupported.
	ErrInvalidBudgetDuration = errors.New("invalid budget duration")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	ErrCodeBudgetNotFound        BudgetErrorCode = "BGT-010001"
	ErrCodeNoBudgetsFound        BudgetErrorCode = "BGT-010002"
	ErrCodeBudgetAlreadyExists   BudgetErrorCode = "BGT-010003"
	ErrCodeInvalidBudgetCategory BudgetErrorCode = "BGT-010004"
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BGT-010005"
	ErrCodeInvalidBudgetDuration BudgetErrorCode = "BGT-010006"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BGT-010007"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
