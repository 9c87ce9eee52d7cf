// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/domain/entity"
)

// EmailQueueModel represents the email_queue table in the database. The
// composite index backs the worker's due-job poll.
type EmailQueueModel struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	TemplateType   string       `gorm:"type:varchar(50);not null"`
	RecipientEmail string       `gorm:"type:varchar(255);not null"`
	RecipientName  string       `gorm:"type:varchar(255)"`
	Subject        string       `gorm:"type:varchar(500);not null"`
	TemplateData   string       `gorm:"type:jsonb;not null;default:'{}'"`
	Status         string       `gorm:"type:varchar(20);not null;default:'pending';index:idx_email_queue_due,priority:1"`
	Attempts       int          `gorm:"not null;default:0"`
	MaxAttempts    int          `gorm:"not null;default:3"`
	LastError      string       `gorm:"type:text"`
	ResendID       string       `gorm:"type:varchar(100)"`
	CreatedAt      time.Time    `gorm:"not null"`
	ScheduledAt    time.Time    `gorm:"not null;index:idx_email_queue_due,priority:2"`
	ProcessedAt    sql.NullTime `gorm:"type:timestamptz"`
}

// TableName returns the table name for the EmailQueueModel.
func (EmailQueueModel) TableName() string {
	return "email_queue"
}

// ToEntity converts an EmailQueueModel to a domain EmailJob entity.
func (m *EmailQueueModel) ToEntity() *entity.EmailJob {
	job := &entity.EmailJob{
		ID:             m.ID,
		TemplateType:   entity.EmailTemplateType(m.TemplateType),
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		Subject:        m.Subject,
		TemplateData:   decodeTemplateData(m.ID, m.TemplateData),
		Status:         entity.EmailStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ResendID:       m.ResendID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
	}
	if m.ProcessedAt.Valid {
		processedAt := m.ProcessedAt.Time
		job.ProcessedAt = &processedAt
	}
	return job
}

// EmailQueueFromEntity creates an EmailQueueModel from a domain EmailJob entity.
func EmailQueueFromEntity(job *entity.EmailJob) *EmailQueueModel {
	queueModel := &EmailQueueModel{
		ID:             job.ID,
		TemplateType:   string(job.TemplateType),
		RecipientEmail: job.RecipientEmail,
		RecipientName:  job.RecipientName,
		Subject:        job.Subject,
		TemplateData:   encodeTemplateData(job.ID, job.TemplateData),
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ResendID:       job.ResendID,
		CreatedAt:      job.CreatedAt,
		ScheduledAt:    job.ScheduledAt,
	}
	if job.ProcessedAt != nil {
		queueModel.ProcessedAt = sql.NullTime{Time: *job.ProcessedAt, Valid: true}
	}
	return queueModel
}

func decodeTemplateData(jobID uuid.UUID, raw string) map[string]interface{} {
	data := make(map[string]interface{})
	if raw == "" {
		return data
	}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		slog.Warn("Corrupt email template data", "email_job_id", jobID, "error", err)
	}
	return data
}

func encodeTemplateData(jobID uuid.UUID, data map[string]interface{}) string {
	encoded, err := json.Marshal(data)
	if err != nil {
		slog.Error("Failed to encode email template data", "email_job_id", jobID, "error", err)
		return "{}"
	}
	return string(encoded)
}
