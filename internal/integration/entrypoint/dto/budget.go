package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Duration string          `json:"duration" binding:"required"`
	Currency string          `json:"currency,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Duration *string          `json:"duration,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Duration  string          `json:"duration"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// BudgetRecommendationResponse represents one budget assessment.
type BudgetRecommendationResponse struct {
	BudgetID   string          `json:"budgetId"`
	Category   string          `json:"category"`
	Duration   string          `json:"duration"`
	Amount     decimal.Decimal `json:"amount"`
	Spent      decimal.Decimal `json:"spent"`
	Percentage int             `json:"percentage"`
	Advice     string          `json:"advice"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID.String(),
		Category:  b.Category,
		Amount:    b.Amount,
		Duration:  string(b.Duration),
		Currency:  b.Currency,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBudgetListResponse converts a list of budgets to response DTOs.
func ToBudgetListResponse(budgets []*entity.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetResponse(b)
	}
	return responses
}

// ToRecommendationListResponse converts budget recommendations to response DTOs.
func ToRecommendationListResponse(recommendations []*entity.BudgetRecommendation) []BudgetRecommendationResponse {
	responses := make([]BudgetRecommendationResponse, len(recommendations))
	for i, r := range recommendations {
		responses[i] = BudgetRecommendationResponse{
			BudgetID:   r.BudgetID.String(),
			Category:   r.Category,
			Duration:   string(r.Duration),
			Amount:     r.Amount,
			Spent:      r.Spent,
			Percentage: r.Percentage,
			Advice:     r.Advice,
		}
	}
	return responses
}
