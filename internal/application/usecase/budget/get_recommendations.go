// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// GetRecommendationsInput represents the input for budget recommendations.
type GetRecommendationsInput struct {
	UserID uuid.UUID
}

// GetRecommendationsOutput represents the output of budget recommendations.
type GetRecommendationsOutput struct {
	Recommendations []*entity.BudgetRecommendation
}

// GetRecommendationsUseCase assesses each budget against the expense spend in
// its category over the current window and classifies the result.
type GetRecommendationsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	notifier        adapter.Notifier
	now             func() time.Time
}

// NewGetRecommendationsUseCase creates a new GetRecommendationsUseCase instance.
func NewGetRecommendationsUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	notifier adapter.Notifier,
) *GetRecommendationsUseCase {
	return &GetRecommendationsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		notifier:        notifier,
		now:             time.Now,
	}
}

// Execute computes the recommendations.
func (uc *GetRecommendationsUseCase) Execute(ctx context.Context, input GetRecommendationsInput) (*GetRecommendationsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID, entity.BudgetFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if len(budgets) == 0 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNoBudgetsFound,
			"No budgets found",
			domainerror.ErrNoBudgetsFound,
		)
	}

	now := uc.now()
	recommendations := make([]*entity.BudgetRecommendation, 0, len(budgets))

	for _, b := range budgets {
		start, end := periodWindow(b.Duration, now)

		spent, err := uc.transactionRepo.SumExpensesByCategory(ctx, input.UserID, b.Category, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to sum spending for category %q: %w", b.Category, err)
		}

		percentage := 0
		if b.Amount.IsPositive() {
			ratio, _ := spent.Div(b.Amount).Float64()
			percentage = int(math.Round(ratio * 100))
		}

		rec := &entity.BudgetRecommendation{
			BudgetID:   b.ID,
			Category:   b.Category,
			Duration:   b.Duration,
			Amount:     b.Amount,
			Spent:      spent,
			Percentage: percentage,
			Advice:     adviceFor(b.Category, percentage),
		}
		recommendations = append(recommendations, rec)

		// Best-effort alert; the assessment itself must not fail on a
		// notification problem.
		if percentage >= 100 && uc.notifier != nil {
			if err := uc.notifier.NotifyBudgetExceeded(ctx, input.UserID, b, spent); err != nil {
				slog.Error("Failed to send budget exceeded notification",
					"budget_id", b.ID,
					"user_id", input.UserID,
					"error", err,
				)
			}
		}
	}

	return &GetRecommendationsOutput{
		Recommendations: recommendations,
	}, nil
}

// adviceFor classifies spend-vs-budget. At or over the limit is over budget,
// 80% and above is nearing it, anything below is on track.
func adviceFor(category string, percentage int) string {
	switch {
	case percentage >= 100:
		return fmt.Sprintf("You have exceeded your %s budget. Consider cutting back next period.", category)
	case percentage >= 80:
		return fmt.Sprintf("You are nearing your %s budget limit. Spend carefully for the rest of the period.", category)
	default:
		return fmt.Sprintf("Your %s spending is on track.", category)
	}
}
