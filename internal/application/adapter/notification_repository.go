// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/domain/entity"
)

// NotificationRepository defines the interface for in-app notification persistence.
type NotificationRepository interface {
	// Create creates a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its ID, scoped to the owning user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Notification, error)

	// FindByUserID retrieves all notifications for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.Notification, error)

	// Update saves changes to a notification.
	Update(ctx context.Context, notification *entity.Notification) error

	// Delete removes a notification, scoped to the owner.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// Notifier delivers user-facing notifications through the configured channels
// (in-app record plus queued email when the user opted in).
type Notifier interface {
	// NotifyGoalCompleted notifies the user that a goal reached its target.
	NotifyGoalCompleted(ctx context.Context, userID uuid.UUID, goal *entity.Goal) error

	// NotifyBudgetExceeded notifies the user that spending passed a budget's
	// limit for the current window.
	NotifyBudgetExceeded(ctx context.Context, userID uuid.UUID, budget *entity.Budget, spent decimal.Decimal) error
}
