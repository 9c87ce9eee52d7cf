// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// GetBudgetInput represents the input for fetching a single budget.
type GetBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// GetBudgetOutput represents the output of a single budget fetch.
type GetBudgetOutput struct {
	Budget *entity.Budget
}

// GetBudgetUseCase fetches one budget scoped to its owner.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the fetch.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"Budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	return &GetBudgetOutput{
		Budget: budget,
	}, nil
}
