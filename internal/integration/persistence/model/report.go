// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/domain/entity"
)

// ReportModel represents the reports table in the database.
type ReportModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(20);not null"`
	Payload     string    `gorm:"type:jsonb;not null;default:'{}'"`
	GeneratedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ReportModel.
func (ReportModel) TableName() string {
	return "reports"
}

// ToEntity converts a ReportModel to a domain Report entity.
func (m *ReportModel) ToEntity() *entity.Report {
	var payload map[string]interface{}
	if m.Payload != "" {
		if err := json.Unmarshal([]byte(m.Payload), &payload); err != nil {
			slog.Warn("Failed to unmarshal report payload", "error", err, "id", m.ID)
		}
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	return &entity.Report{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        entity.ReportType(m.Type),
		Payload:     payload,
		GeneratedAt: m.GeneratedAt,
	}
}

// ReportFromEntity creates a ReportModel from a domain Report entity.
func ReportFromEntity(report *entity.Report) *ReportModel {
	payloadJSON, err := json.Marshal(report.Payload)
	if err != nil {
		slog.Error("Failed to marshal report payload", "error", err, "report_id", report.ID)
		payloadJSON = []byte("{}")
	}

	return &ReportModel{
		ID:          report.ID,
		UserID:      report.UserID,
		Type:        string(report.Type),
		Payload:     string(payloadJSON),
		GeneratedAt: report.GeneratedAt,
	}
}
