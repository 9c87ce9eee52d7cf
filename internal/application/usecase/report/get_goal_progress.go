// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
)

// GoalProgressEntry is one goal's progress line in the report.
type GoalProgressEntry struct {
	GoalID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Progress      int
	Status        entity.GoalStatus
}

// GetGoalProgressInput represents the input for the goal progress report.
type GetGoalProgressInput struct {
	UserID uuid.UUID
}

// GetGoalProgressOutput represents the goal progress report.
type GetGoalProgressOutput struct {
	Goals []GoalProgressEntry
}

// GetGoalProgressUseCase reports per-goal completion percentages.
type GetGoalProgressUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalProgressUseCase creates a new GetGoalProgressUseCase instance.
func NewGetGoalProgressUseCase(goalRepo adapter.GoalRepository) *GetGoalProgressUseCase {
	return &GetGoalProgressUseCase{
		goalRepo: goalRepo,
	}
}

// Execute computes the goal progress report. A user with no goals gets an
// empty list.
func (uc *GetGoalProgressUseCase) Execute(ctx context.Context, input GetGoalProgressInput) (*GetGoalProgressOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	entries := make([]GoalProgressEntry, 0, len(goals))
	for _, g := range goals {
		entries = append(entries, GoalProgressEntry{
			GoalID:        g.ID,
			Name:          g.Name,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Progress:      g.Progress(),
			Status:        g.Status,
		})
	}

	return &GetGoalProgressOutput{
		Goals: entries,
	}, nil
}
