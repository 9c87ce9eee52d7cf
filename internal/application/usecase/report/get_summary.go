// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// GetSummaryInput represents the input for the filtered summary report. All
// filters are optional; Currency selects the display currency and defaults to
// the base currency.
type GetSummaryInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Category  *string
	Currency  string
}

// GetSummaryOutput represents the filtered summary report. Amounts are in the
// requested display currency.
type GetSummaryOutput struct {
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
	NetBalance       decimal.Decimal
	TransactionCount int
	Currency         string
}

// GetSummaryUseCase computes income/expense totals over an optional date
// range and category, converted for display.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	converter       adapter.CurrencyConverter
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	converter adapter.CurrencyConverter,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		converter:       converter,
	}
}

// Execute computes the summary report.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not precede start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	transactions, err := uc.transactionRepo.FindByUserID(ctx, input.UserID, entity.TransactionFilter{
		Category:  input.Category,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, t := range transactions {
		if t.IsExpense() {
			totalExpense = totalExpense.Add(t.Amount)
		} else {
			totalIncome = totalIncome.Add(t.Amount)
		}
	}

	currency := input.Currency
	if currency == "" {
		currency = uc.converter.BaseCurrency()
	}
	if currency != uc.converter.BaseCurrency() {
		totalIncome, err = uc.converter.FromBase(ctx, totalIncome, currency)
		if err != nil {
			return nil, err
		}
		totalExpense, err = uc.converter.FromBase(ctx, totalExpense, currency)
		if err != nil {
			return nil, err
		}
	}

	return &GetSummaryOutput{
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		NetBalance:       totalIncome.Sub(totalExpense),
		TransactionCount: len(transactions),
		Currency:         currency,
	}, nil
}
