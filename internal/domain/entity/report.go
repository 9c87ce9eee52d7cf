// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportType identifies which aggregation produced a report snapshot.
type ReportType string

const (
	ReportTypeTrends       ReportType = "trends"
	ReportTypeSummary      ReportType = "summary"
	ReportTypeGoalProgress ReportType = "goal_progress"
)

// Report is a persisted snapshot of aggregated totals at generation time.
// The payload is the serialized report body as returned to the caller.
type Report struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        ReportType
	Payload     map[string]interface{}
	GeneratedAt time.Time
}

// NewReport creates a new Report snapshot.
func NewReport(userID uuid.UUID, reportType ReportType, payload map[string]interface{}) *Report {
	return &Report{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        reportType,
		Payload:     payload,
		GeneratedAt: time.Now().UTC(),
	}
}
