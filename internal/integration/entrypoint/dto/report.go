package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/usecase/report"
	"github.com/fundflow/backend/internal/domain/entity"
)

// CategoryBreakdownResponse holds the income/expense split for one category.
type CategoryBreakdownResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// TrendsResponse represents the trends report payload.
type TrendsResponse struct {
	TotalIncome  decimal.Decimal                      `json:"totalIncome"`
	TotalExpense decimal.Decimal                      `json:"totalExpense"`
	NetBalance   decimal.Decimal                      `json:"netBalance"`
	ByCategory   map[string]CategoryBreakdownResponse `json:"byCategory"`
	BaseCurrency string                               `json:"baseCurrency"`
}

// SummaryResponse represents the filtered summary report payload.
type SummaryResponse struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	NetBalance       decimal.Decimal `json:"netBalance"`
	TransactionCount int             `json:"transactionCount"`
	Currency         string          `json:"currency"`
}

// GoalProgressResponse represents one goal in the progress report.
type GoalProgressResponse struct {
	GoalID        string          `json:"goalId"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Progress      int             `json:"progress"`
	Status        string          `json:"status"`
}

// InsightsResponse represents the generated insights payload.
type InsightsResponse struct {
	Insights string `json:"insights"`
}

// ReportHistoryResponse represents one saved report snapshot.
type ReportHistoryResponse struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	Payload     map[string]interface{} `json:"payload"`
	GeneratedAt time.Time              `json:"generatedAt"`
}

// ToTrendsResponse converts the trends output to a response DTO.
func ToTrendsResponse(output *report.GetTrendsOutput) TrendsResponse {
	byCategory := make(map[string]CategoryBreakdownResponse, len(output.ByCategory))
	for category, breakdown := range output.ByCategory {
		byCategory[category] = CategoryBreakdownResponse{
			Income:  breakdown.Income,
			Expense: breakdown.Expense,
		}
	}

	return TrendsResponse{
		TotalIncome:  output.TotalIncome,
		TotalExpense: output.TotalExpense,
		NetBalance:   output.NetBalance,
		ByCategory:   byCategory,
		BaseCurrency: output.BaseCurrency,
	}
}

// ToSummaryResponse converts the summary output to a response DTO.
func ToSummaryResponse(output *report.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		TotalIncome:      output.TotalIncome,
		TotalExpense:     output.TotalExpense,
		NetBalance:       output.NetBalance,
		TransactionCount: output.TransactionCount,
		Currency:         output.Currency,
	}
}

// ToGoalProgressListResponse converts goal progress entries to response DTOs.
func ToGoalProgressListResponse(entries []report.GoalProgressEntry) []GoalProgressResponse {
	responses := make([]GoalProgressResponse, len(entries))
	for i, entry := range entries {
		responses[i] = GoalProgressResponse{
			GoalID:        entry.GoalID.String(),
			Name:          entry.Name,
			TargetAmount:  entry.TargetAmount,
			CurrentAmount: entry.CurrentAmount,
			Progress:      entry.Progress,
			Status:        string(entry.Status),
		}
	}
	return responses
}

// ToReportHistoryListResponse converts saved reports to response DTOs.
func ToReportHistoryListResponse(reports []*entity.Report) []ReportHistoryResponse {
	responses := make([]ReportHistoryResponse, len(reports))
	for i, r := range reports {
		responses[i] = ReportHistoryResponse{
			ID:          r.ID.String(),
			Type:        string(r.Type),
			Payload:     r.Payload,
			GeneratedAt: r.GeneratedAt,
		}
	}
	return responses
}
