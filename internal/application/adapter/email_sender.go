// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueueGoalCompletedInput represents the input for queueing a goal completion email.
type QueueGoalCompletedInput struct {
	UserEmail    string
	UserName     string
	GoalName     string
	TargetAmount string
	BaseCurrency string
}

// QueueBudgetExceededInput represents the input for queueing a budget exceeded email.
type QueueBudgetExceededInput struct {
	UserEmail    string
	UserName     string
	Category     string
	BudgetAmount string
	SpentAmount  string
	BaseCurrency string
}

// EmailService defines the interface for queueing notification emails.
type EmailService interface {
	// QueueGoalCompletedEmail queues a goal completion email.
	QueueGoalCompletedEmail(ctx context.Context, input QueueGoalCompletedInput) error

	// QueueBudgetExceededEmail queues a budget exceeded email.
	QueueBudgetExceededEmail(ctx context.Context, input QueueBudgetExceededInput) error
}
