// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// SpendingSummary is the aggregate handed to the insight service.
type SpendingSummary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetBalance   decimal.Decimal
	BaseCurrency string
	ByCategory   map[string]decimal.Decimal // Expense totals per category
}

// InsightService generates natural-language commentary over a user's spending
// aggregates via an external AI model.
type InsightService interface {
	// GenerateInsights returns short spending observations and suggestions.
	GenerateInsights(ctx context.Context, summary SpendingSummary) (string, error)
}
