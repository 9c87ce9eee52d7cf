// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
)

// GetGoalStatsInput represents the input for goal statistics.
type GetGoalStatsInput struct {
	UserID uuid.UUID
}

// GetGoalStatsOutput represents the output of goal statistics.
type GetGoalStatsOutput struct {
	Stats entity.GoalStats
}

// GetGoalStatsUseCase computes aggregated statistics over a user's goals.
type GetGoalStatsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalStatsUseCase creates a new GetGoalStatsUseCase instance.
func NewGetGoalStatsUseCase(goalRepo adapter.GoalRepository) *GetGoalStatsUseCase {
	return &GetGoalStatsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute computes the statistics. A user with no goals gets zero totals and
// a zero completion rate rather than an error.
func (uc *GetGoalStatsUseCase) Execute(ctx context.Context, input GetGoalStatsInput) (*GetGoalStatsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	stats := entity.GoalStats{
		TotalGoals:         len(goals),
		TotalTargetAmount:  decimal.Zero,
		TotalCurrentAmount: decimal.Zero,
	}

	for _, g := range goals {
		stats.TotalTargetAmount = stats.TotalTargetAmount.Add(g.TargetAmount)
		stats.TotalCurrentAmount = stats.TotalCurrentAmount.Add(g.CurrentAmount)
		if g.IsCompleted() {
			stats.CompletedGoals++
		}
	}

	if stats.TotalGoals > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedGoals) / float64(stats.TotalGoals) * 100))
	}

	return &GetGoalStatsOutput{
		Stats: stats,
	}, nil
}
