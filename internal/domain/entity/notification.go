// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies in-app notifications.
type NotificationType string

const (
	NotificationTypeGoalCompleted  NotificationType = "goal_completed"
	NotificationTypeBudgetExceeded NotificationType = "budget_exceeded"
)

// Notification represents an in-app notification for a user.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}

// NewNotification creates a new unread Notification entity.
func NewNotification(userID uuid.UUID, notificationType NotificationType, title, message string) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      notificationType,
		Title:     title,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
}

// MarkRead marks the notification as read.
func (n *Notification) MarkRead() {
	n.Read = true
}
