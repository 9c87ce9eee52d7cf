// Package notification contains in-app notification use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
)

// ListNotificationsInput represents the input for listing notifications.
type ListNotificationsInput struct {
	UserID     uuid.UUID
	UnreadOnly bool
}

// ListNotificationsOutput represents the notification listing.
type ListNotificationsOutput struct {
	Notifications []*entity.Notification
	UnreadCount   int
}

// ListNotificationsUseCase lists a user's notifications newest first.
type ListNotificationsUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewListNotificationsUseCase creates a new ListNotificationsUseCase instance.
func NewListNotificationsUseCase(notificationRepo adapter.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute performs the listing.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, input ListNotificationsInput) (*ListNotificationsOutput, error) {
	notifications, err := uc.notificationRepo.FindByUserID(ctx, input.UserID, input.UnreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	return &ListNotificationsOutput{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}
