// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for a budget update. Nil fields are
// left unchanged.
type UpdateBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
	Amount   *decimal.Decimal
	Duration *entity.BudgetDuration
}

// UpdateBudgetOutput represents the output of a budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic. The category of an existing
// budget is fixed; only the limit and window can change.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
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

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidBudgetAmount,
			)
		}
		budget.Amount = *input.Amount
	}

	if input.Duration != nil {
		if !entity.IsValidBudgetDuration(*input.Duration) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetDuration,
				"duration must be weekly, monthly or yearly",
				domainerror.ErrInvalidBudgetDuration,
			)
		}
		budget.Duration = *input.Duration
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{
		Budget: budget,
	}, nil
}
