// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/domain/entity"
)

// NotificationModel represents the notifications table in the database.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(30);not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	Read      bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts a NotificationModel to a domain Notification entity.
func (m *NotificationModel) ToEntity() *entity.Notification {
	return &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entity.NotificationType(m.Type),
		Title:     m.Title,
		Message:   m.Message,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}

// NotificationFromEntity creates a NotificationModel from a domain Notification entity.
func NotificationFromEntity(notification *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Type:      string(notification.Type),
		Title:     notification.Title,
		Message:   notification.Message,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	}
}
