// Package error defines domain-specific errors for the FundFlow application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidDateRange is returned when the report end date precedes the start date.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidReportFormat is returned when the requested format is unsupported.
	ErrInvalidReportFormat = errors.New("invalid report format")

	// ErrReportNotFound is returned when a saved report is not found.
	ErrReportNotFound = errors.New("report not found")

	// ErrPDFRenderFailed is returned when the external PDF service fails.
	ErrPDFRenderFailed = errors.New("pdf rendering failed")

	// ErrInsightsUnavailable is returned when the AI insight service fails.
	ErrInsightsUnavailable = errors.New("insights unavailable")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateRange     ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportFormat  ReportErrorCode = "RPT-010002"
	ErrCodeReportNotFound       ReportErrorCode = "RPT-010003"

	// Upstream errors (02XXXX)
	ErrCodePDFRenderFailed      ReportErrorCode = "RPT-020001"
	ErrCodeInsightsUnavailable  ReportErrorCode = "RPT-020002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
