// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	// Validate name
	name := strings.TrimSpace(input.Name)
	if len(name) < entity.MinGoalNameLength {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalName,
			"goal name must be at least 3 characters",
			domainerror.ErrInvalidGoalName,
		)
	}

	// Validate target amount
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	// Validate deadline is in the future
	if input.Deadline != nil && !input.Deadline.After(time.Now().UTC()) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodePastDeadline,
			"deadline must be in the future",
			domainerror.ErrPastDeadline,
		)
	}

	// A user may have at most one Savings Goal
	if name == entity.SavingsGoalName {
		exists, err := uc.goalRepo.ExistsByUserAndName(ctx, input.UserID, entity.SavingsGoalName)
		if err != nil {
			return nil, fmt.Errorf("failed to check savings goal existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeSavingsGoalExists,
				"a Savings Goal already exists",
				domainerror.ErrSavingsGoalExists,
			)
		}
	}

	// Create goal entity
	goal := entity.NewGoal(input.UserID, name, input.TargetAmount, input.Deadline)

	// Save goal to database
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
