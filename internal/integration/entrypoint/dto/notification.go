package dto

import (
	"time"

	"github.com/fundflow/backend/internal/domain/entity"
)

// NotificationResponse represents a single notification in API responses.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse represents the notification listing payload.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// ToNotificationResponse converts a domain Notification entity to a
// NotificationResponse DTO.
func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationListResponse converts a notification listing to a response DTO.
func ToNotificationListResponse(notifications []*entity.Notification, unreadCount int) NotificationListResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = ToNotificationResponse(n)
	}
	return NotificationListResponse{
		Notifications: responses,
		UnreadCount:   unreadCount,
	}
}
