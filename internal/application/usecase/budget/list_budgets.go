// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// ListBudgetsInput represents the input for listing budgets. The filter is
// optional; an empty filter returns every budget the user has.
type ListBudgetsInput struct {
	UserID uuid.UUID
	Filter entity.BudgetFilter
}

// ListBudgetsOutput represents the output of a budget listing.
type ListBudgetsOutput struct {
	Budgets []*entity.Budget
}

// ListBudgetsUseCase lists a user's budgets, optionally narrowed by category
// or duration.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	if input.Filter.Duration != nil && !entity.IsValidBudgetDuration(*input.Filter.Duration) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetDuration,
			"duration must be weekly, monthly or yearly",
			domainerror.ErrInvalidBudgetDuration,
		)
	}

	budgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return &ListBudgetsOutput{
		Budgets: budgets,
	}, nil
}
