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

// CategoryBreakdown holds the income/expense split for one category.
type CategoryBreakdown struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// GetTrendsInput represents the input for the trends report.
type GetTrendsInput struct {
	UserID uuid.UUID
}

// GetTrendsOutput represents the trends report.
type GetTrendsOutput struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetBalance   decimal.Decimal
	ByCategory   map[string]CategoryBreakdown
	BaseCurrency string
}

// GetTrendsUseCase partitions a user's full transaction history into income
// and expense totals with a per-category breakdown.
type GetTrendsUseCase struct {
	transactionRepo adapter.TransactionRepository
	converter       adapter.CurrencyConverter
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(
	transactionRepo adapter.TransactionRepository,
	converter adapter.CurrencyConverter,
) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		transactionRepo: transactionRepo,
		converter:       converter,
	}
}

// Execute computes the trends report.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
	transactions, err := uc.transactionRepo.FindByUserID(ctx, input.UserID, entity.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	out := &GetTrendsOutput{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		ByCategory:   make(map[string]CategoryBreakdown),
		BaseCurrency: uc.converter.BaseCurrency(),
	}

	for _, t := range transactions {
		breakdown := out.ByCategory[t.Category]
		if t.IsExpense() {
			out.TotalExpense = out.TotalExpense.Add(t.Amount)
			breakdown.Expense = breakdown.Expense.Add(t.Amount)
		} else {
			out.TotalIncome = out.TotalIncome.Add(t.Amount)
			breakdown.Income = breakdown.Income.Add(t.Amount)
		}
		out.ByCategory[t.Category] = breakdown
	}

	out.NetBalance = out.TotalIncome.Sub(out.TotalExpense)

	return out, nil
}
