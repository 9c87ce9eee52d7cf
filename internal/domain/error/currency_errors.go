// Package error defines domain-specific errors for the FundFlow application.
package error

import "errors"

// Currency conversion errors.
var (
	// ErrUnsupportedCurrency is returned when no rate is known for a currency code.
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrRateLookupFailed is returned when the upstream rate provider fails.
	ErrRateLookupFailed = errors.New("currency rate lookup failed")
)

// CurrencyErrorCode defines error codes for currency conversion errors.
// Format: CUR-XXYYYY where XX is category and YYYY is specific error.
type CurrencyErrorCode string

const (
	ErrCodeUnsupportedCurrency CurrencyErrorCode = "CUR-010001"
	ErrCodeRateLookupFailed    CurrencyErrorCode = "CUR-020001"
)

// CurrencyError represents a currency conversion error with code and message.
type CurrencyError struct {
	Code    CurrencyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CurrencyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CurrencyError) Unwrap() error {
	return e.Err
}

// NewCurrencyError creates a new CurrencyError with the given code and message.
func NewCurrencyError(code CurrencyErrorCode, message string, err error) *CurrencyError {
	return &CurrencyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
