// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
)

// notifier implements adapter.Notifier. Every event writes an in-app
// notification row; an email is queued on top when the user opted in.
type notifier struct {
	notificationRepo adapter.NotificationRepository
	userRepo         adapter.UserRepository
	emailService     adapter.EmailService
	baseCurrency     string
}

// NewNotifier creates a new notifier instance.
func NewNotifier(
	notificationRepo adapter.NotificationRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
	baseCurrency string,
) adapter.Notifier {
	return &notifier{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailService:     emailService,
		baseCurrency:     baseCurrency,
	}
}

// NotifyGoalCompleted notifies the user that a goal reached its target.
func (n *notifier) NotifyGoalCompleted(ctx context.Context, userID uuid.UUID, goal *entity.Goal) error {
	notification := entity.NewNotification(
		userID,
		entity.NotificationTypeGoalCompleted,
		"Goal completed",
		fmt.Sprintf("Congratulations! Your goal %q reached its target of %s %s.",
			goal.Name, goal.TargetAmount.StringFixed(2), n.baseCurrency),
	)
	if err := n.notificationRepo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	user, err := n.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}
	if !user.EmailNotifications || !user.GoalAlerts {
		return nil
	}

	if err := n.emailService.QueueGoalCompletedEmail(ctx, adapter.QueueGoalCompletedInput{
		UserEmail:    user.Email,
		UserName:     user.Name,
		GoalName:     goal.Name,
		TargetAmount: goal.TargetAmount.StringFixed(2),
		BaseCurrency: n.baseCurrency,
	}); err != nil {
		// The in-app notification already landed; a queue failure is not fatal
		slog.Error("Failed to queue goal completion email", "user_id", userID, "error", err)
	}
	return nil
}

// NotifyBudgetExceeded notifies the user that spending passed a budget's
// limit for the current window.
func (n *notifier) NotifyBudgetExceeded(ctx context.Context, userID uuid.UUID, budget *entity.Budget, spent decimal.Decimal) error {
	notification := entity.NewNotification(
		userID,
		entity.NotificationTypeBudgetExceeded,
		"Budget exceeded",
		fmt.Sprintf("You spent %s %s of your %s %s budget for %s.",
			spent.StringFixed(2), n.baseCurrency,
			budget.Amount.StringFixed(2), n.baseCurrency, budget.Category),
	)
	if err := n.notificationRepo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	user, err := n.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}
	if !user.EmailNotifications {
		return nil
	}

	if err := n.emailService.QueueBudgetExceededEmail(ctx, adapter.QueueBudgetExceededInput{
		UserEmail:    user.Email,
		UserName:     user.Name,
		Category:     budget.Category,
		BudgetAmount: budget.Amount.StringFixed(2),
		SpentAmount:  spent.StringFixed(2),
		BaseCurrency: n.baseCurrency,
	}); err != nil {
		slog.Error("Failed to queue budget exceeded email", "user_id", userID, "error", err)
	}
	return nil
}
