// Package notification contains in-app notification use cases.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// MarkNotificationReadInput represents the input for marking a notification read.
type MarkNotificationReadInput struct {
	UserID         uuid.UUID
	NotificationID uuid.UUID
}

// MarkNotificationReadOutput represents the updated notification.
type MarkNotificationReadOutput struct {
	Notification *entity.Notification
}

// MarkNotificationReadUseCase marks a notification as read.
type MarkNotificationReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkNotificationReadUseCase creates a new MarkNotificationReadUseCase instance.
func NewMarkNotificationReadUseCase(notificationRepo adapter.NotificationRepository) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute marks the notification read. Marking an already-read notification
// is a no-op rather than an error.
func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, input MarkNotificationReadInput) (*MarkNotificationReadOutput, error) {
	notification, err := uc.notificationRepo.FindByID(ctx, input.NotificationID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrNotificationNotFound) {
			return nil, domainerror.NewNotificationError(
				domainerror.ErrCodeNotificationNotFound,
				"Notification not found",
				domainerror.ErrNotificationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	if !notification.Read {
		notification.MarkRead()
		if err := uc.notificationRepo.Update(ctx, notification); err != nil {
			return nil, fmt.Errorf("failed to update notification: %w", err)
		}
	}

	return &MarkNotificationReadOutput{
		Notification: notification,
	}, nil
}
