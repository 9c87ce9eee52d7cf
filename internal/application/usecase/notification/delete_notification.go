// Package notification contains in-app notification use cases.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/application/adapter"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// DeleteNotificationInput represents the input for notification deletion.
type DeleteNotificationInput struct {
	UserID         uuid.UUID
	NotificationID uuid.UUID
}

// DeleteNotificationOutput represents the output of notification deletion.
type DeleteNotificationOutput struct{}

// DeleteNotificationUseCase removes a notification.
type DeleteNotificationUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewDeleteNotificationUseCase creates a new DeleteNotificationUseCase instance.
func NewDeleteNotificationUseCase(notificationRepo adapter.NotificationRepository) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, input DeleteNotificationInput) (*DeleteNotificationOutput, error) {
	if err := uc.notificationRepo.Delete(ctx, input.NotificationID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrNotificationNotFound) {
			return nil, domainerror.NewNotificationError(
				domainerror.ErrCodeNotificationNotFound,
				"Notification not found",
				domainerror.ErrNotificationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to delete notification: %w", err)
	}

	return &DeleteNotificationOutput{}, nil
}
