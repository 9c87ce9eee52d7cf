// Package error defines domain-specific errors for the FundFlow application.
package error

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found or not owned by the caller.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrNoGoalsFound is returned when a user has no goals.
	ErrNoGoalsFound = errors.New("no goals found")

	// ErrSavingsGoalNotFound is returned when the user has no designated Savings Goal.
	ErrSavingsGoalNotFound = errors.New("savings goal not found")

	// ErrSavingsGoalExists is returned when attempting to create a second Savings Goal.
	ErrSavingsGoalExists = errors.New("savings goal already exists")

	// ErrInvalidGoalName is returned when the goal name is too short.
	ErrInvalidGoalName = errors.New("invalid goal name")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidFundAmount is returned when a funding amount is zero or negative.
	ErrInvalidFundAmount = errors.New("invalid fund amount")

	// ErrPastDeadline is returned when a goal deadline is not in the future.
	ErrPastDeadline = errors.New("deadline must be in the future")

	// ErrInsufficientFunds is returned when the Savings Goal balance cannot cover a transfer.
	ErrInsufficientFunds = errors.New("insufficient funds in savings goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound        GoalErrorCode = "GOL-010001"
	ErrCodeNoGoalsFound        GoalErrorCode = "GOL-010002"
	ErrCodeSavingsGoalNotFound GoalErrorCode = "GOL-010003"
	ErrCodeSavingsGoalExists   GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalName     GoalErrorCode = "GOL-010005"
	ErrCodeInvalidTargetAmount GoalErrorCode = "GOL-010006"
	ErrCodeInvalidFundAmount   GoalErrorCode = "GOL-010007"
	ErrCodePastDeadline        GoalErrorCode = "GOL-010008"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-010009"

	// Business rule errors (02XXXX)
	ErrCodeInsufficientFunds GoalErrorCode = "GOL-020001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InsufficientFundsError carries the balance detail returned when a transfer
// exceeds the Savings Goal balance.
type InsufficientFundsError struct {
	SavingsGoalCurrentAmount decimal.Decimal
	RequestedAmount          decimal.Decimal
	BaseCurrency             string
}

// Error implements the error interface.
func (e *InsufficientFundsError) Error() string {
	return "insufficient funds in savings goal: requested " +
		e.RequestedAmount.String() + " " + e.BaseCurrency +
		", available " + e.SavingsGoalCurrentAmount.String() + " " + e.BaseCurrency
}

// Unwrap returns the sentinel insufficient funds error.
func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}
