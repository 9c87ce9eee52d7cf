// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestGetGoalStats(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name               string
		goals              []struct{ current, target int64 }
		wantTotal          int
		wantCompleted      int
		wantCompletionRate int
		wantTargetSum      int64
		wantCurrentSum     int64
	}{
		{
			name: "two goals one completed",
			goals: []struct{ current, target int64 }{
				{1000, 1000},
				{250, 500},
			},
			wantTotal:          2,
			wantCompleted:      1,
			wantCompletionRate: 50,
			wantTargetSum:      1500,
			wantCurrentSum:     1250,
		},
		{
			name: "rounded completion rate",
			goals: []struct{ current, target int64 }{
				{300, 300},
				{0, 100},
				{0, 100},
			},
			wantTotal:          3,
			wantCompleted:      1,
			wantCompletionRate: 33,
			wantTargetSum:      500,
			wantCurrentSum:     300,
		},
		{
			name:               "no goals",
			goals:              nil,
			wantTotal:          0,
			wantCompleted:      0,
			wantCompletionRate: 0,
			wantTargetSum:      0,
			wantCurrentSum:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeGoalRepo()
			for i, g := range tt.goals {
				goal := newTargetGoal(userID, "Goal "+string(rune('A'+i)), g.current, g.target)
				repo.goals[goal.ID] = goal
			}
			uc := NewGetGoalStatsUseCase(repo)

			out, err := uc.Execute(context.Background(), GetGoalStatsInput{UserID: userID})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			stats := out.Stats
			if stats.TotalGoals != tt.wantTotal {
				t.Errorf("expected %d goals, got %d", tt.wantTotal, stats.TotalGoals)
			}
			if stats.CompletedGoals != tt.wantCompleted {
				t.Errorf("expected %d completed, got %d", tt.wantCompleted, stats.CompletedGoals)
			}
			if stats.CompletionRate != tt.wantCompletionRate {
				t.Errorf("expected completion rate %d, got %d", tt.wantCompletionRate, stats.CompletionRate)
			}
			if !stats.TotalTargetAmount.Equal(decimal.NewFromInt(tt.wantTargetSum)) {
				t.Errorf("expected target sum %d, got %s", tt.wantTargetSum, stats.TotalTargetAmount)
			}
			if !stats.TotalCurrentAmount.Equal(decimal.NewFromInt(tt.wantCurrentSum)) {
				t.Errorf("expected current sum %d, got %s", tt.wantCurrentSum, stats.TotalCurrentAmount)
			}
		})
	}
}

func TestCreateGoal_Validation(t *testing.T) {
	userID := uuid.New()

	t.Run("rejects short name", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepo())
		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Name:         "  ab  ",
			TargetAmount: decimal.NewFromInt(100),
		})
		if err == nil {
			t.Fatal("expected error for short name")
		}
	})

	t.Run("rejects duplicate savings goal", func(t *testing.T) {
		repo := newFakeGoalRepo(newSavingsGoal(userID, 0))
		uc := NewCreateGoalUseCase(repo)
		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Name:         "Savings Goal",
			TargetAmount: decimal.NewFromInt(100),
		})
		if err == nil {
			t.Fatal("expected error for duplicate savings goal")
		}
	})

	t.Run("creates goal with trimmed name", func(t *testing.T) {
		repo := newFakeGoalRepo()
		uc := NewCreateGoalUseCase(repo)
		out, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Name:         "  New Laptop  ",
			TargetAmount: decimal.NewFromInt(1000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Goal.Name != "New Laptop" {
			t.Errorf("expected trimmed name, got %q", out.Goal.Name)
		}
		if out.Goal.Progress() != 0 {
			t.Errorf("expected 0%% progress, got %d", out.Goal.Progress())
		}
	})
}
