// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	UserID       uuid.UUID
	Name         *string          // Optional
	TargetAmount *decimal.Decimal // Optional
	Deadline     *time.Time       // Optional
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update. Lowering the target amount below the
// current amount is rejected rather than silently discarding funds.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	// Find the existing goal, scoped to the owner
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"Goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	// Update name if provided. Renaming the Savings Goal (or renaming another
	// goal to it) is not allowed; the name designates the funding source.
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if len(name) < entity.MinGoalNameLength {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalName,
				"goal name must be at least 3 characters",
				domainerror.ErrInvalidGoalName,
			)
		}
		if goal.IsSavingsGoal() != (name == entity.SavingsGoalName) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalName,
				"the Savings Goal cannot be renamed",
				domainerror.ErrInvalidGoalName,
			)
		}
		goal.Name = name
	}

	// Update target amount if provided
	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		if input.TargetAmount.LessThan(goal.CurrentAmount) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount cannot be lower than the current amount",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	// Update deadline if provided
	if input.Deadline != nil {
		if !input.Deadline.After(time.Now().UTC()) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodePastDeadline,
				"deadline must be in the future",
				domainerror.ErrPastDeadline,
			)
		}
		goal.Deadline = input.Deadline
	}

	// Re-derive the status from the amounts
	goal.SyncStatus()
	goal.UpdatedAt = time.Now().UTC()

	// Save updated goal
	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
