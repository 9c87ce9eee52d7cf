// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID   uuid.UUID
	Category string
	Amount   decimal.Decimal
	Duration entity.BudgetDuration
	Currency string
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	converter    adapter.CurrencyConverter
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	converter adapter.CurrencyConverter,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		converter:    converter,
	}
}

// Execute performs the budget creation. The amount is normalized to the base
// currency before it is stored.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"category is required",
			domainerror.ErrInvalidBudgetCategory,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if !entity.IsValidBudgetDuration(input.Duration) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetDuration,
			"duration must be weekly, monthly or yearly",
			domainerror.ErrInvalidBudgetDuration,
		)
	}

	// The category must exist in the registry and be active
	registered, err := uc.categoryRepo.FindByName(ctx, category)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetCategory,
				"Invalid category",
				domainerror.ErrInvalidBudgetCategory,
			)
		}
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}
	if !registered.Active {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCategory,
			"Invalid category",
			domainerror.ErrInvalidBudgetCategory,
		)
	}

	// One budget per category per user
	exists, err := uc.budgetRepo.ExistsByUserAndCategory(ctx, input.UserID, registered.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAlreadyExists,
			"Budget already exists for this category",
			domainerror.ErrBudgetAlreadyExists,
		)
	}

	amount := input.Amount
	currency := input.Currency
	if currency == "" {
		currency = uc.converter.BaseCurrency()
	}
	if currency != uc.converter.BaseCurrency() {
		amount, err = uc.converter.ToBase(ctx, input.Amount, currency)
		if err != nil {
			return nil, err
		}
	}

	budget := entity.NewBudget(input.UserID, registered.Name, amount, input.Duration, uc.converter.BaseCurrency())

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: budget,
	}, nil
}
