// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// GetInsightsInput represents the input for AI spending insights.
type GetInsightsInput struct {
	UserID uuid.UUID
}

// GetInsightsOutput represents the generated insights.
type GetInsightsOutput struct {
	Insights string
}

// GetInsightsUseCase aggregates a user's spending and asks the insight
// service for natural-language commentary.
type GetInsightsUseCase struct {
	transactionRepo adapter.TransactionRepository
	converter       adapter.CurrencyConverter
	insightService  adapter.InsightService
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(
	transactionRepo adapter.TransactionRepository,
	converter adapter.CurrencyConverter,
	insightService adapter.InsightService,
) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		transactionRepo: transactionRepo,
		converter:       converter,
		insightService:  insightService,
	}
}

// Execute generates the insights.
func (uc *GetInsightsUseCase) Execute(ctx context.Context, input GetInsightsInput) (*GetInsightsOutput, error) {
	transactions, err := uc.transactionRepo.FindByUserID(ctx, input.UserID, entity.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	summary := adapter.SpendingSummary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		BaseCurrency: uc.converter.BaseCurrency(),
		ByCategory:   make(map[string]decimal.Decimal),
	}
	for _, t := range transactions {
		if t.IsExpense() {
			summary.TotalExpense = summary.TotalExpense.Add(t.Amount)
			summary.ByCategory[t.Category] = summary.ByCategory[t.Category].Add(t.Amount)
		} else {
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		}
	}
	summary.NetBalance = summary.TotalIncome.Sub(summary.TotalExpense)

	insights, err := uc.insightService.GenerateInsights(ctx, summary)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInsightsUnavailable,
			"Insights are temporarily unavailable",
			err,
		)
	}

	return &GetInsightsOutput{
		Insights: insights,
	}, nil
}
