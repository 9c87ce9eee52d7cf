// Package email provides email queueing and delivery functionality.
package email

import (
	"context"
	"fmt"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueGoalCompletedEmail queues a goal completion email.
func (s *Service) QueueGoalCompletedEmail(ctx context.Context, input adapter.QueueGoalCompletedInput) error {
	subject := fmt.Sprintf("Goal completed: %s - FundFlow", input.GoalName)

	templateData := map[string]interface{}{
		"user_name":     input.UserName,
		"goal_name":     input.GoalName,
		"target_amount": input.TargetAmount,
		"base_currency": input.BaseCurrency,
	}

	job := entity.NewEmailJob(
		entity.TemplateGoalCompleted,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"Failed to queue goal completion email",
			err,
		)
	}

	return nil
}

// QueueBudgetExceededEmail queues a budget exceeded email.
func (s *Service) QueueBudgetExceededEmail(ctx context.Context, input adapter.QueueBudgetExceededInput) error {
	subject := fmt.Sprintf("Budget exceeded: %s - FundFlow", input.Category)

	templateData := map[string]interface{}{
		"user_name":     input.UserName,
		"category":      input.Category,
		"budget_amount": input.BudgetAmount,
		"spent_amount":  input.SpentAmount,
		"base_currency": input.BaseCurrency,
	}

	job := entity.NewEmailJob(
		entity.TemplateBudgetExceeded,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"Failed to queue budget exceeded email",
			err,
		)
	}

	return nil
}

// Ensure Service implements the adapter interface.
var _ adapter.EmailService = (*Service)(nil)
