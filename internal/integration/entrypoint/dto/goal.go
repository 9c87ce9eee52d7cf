package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/usecase/goal"
	"github.com/fundflow/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	Deadline     *string         `json:"deadline,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name         *string          `json:"name,omitempty"`
	TargetAmount *decimal.Decimal `json:"targetAmount,omitempty"`
	Deadline     *string          `json:"deadline,omitempty"`
}

// FundGoalRequest represents the request body for funding a goal from the
// Savings Goal.
type FundGoalRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Currency      string          `json:"currency,omitempty"`
	TransferToken *string         `json:"transferToken,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Progress      int             `json:"progress"`
	Status        string          `json:"status"`
	Deadline      *string         `json:"deadline,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// FundGoalResponse represents the payload returned after a funding transfer.
type FundGoalResponse struct {
	SavingsGoal     GoalResponse    `json:"savingsGoal"`
	TargetGoal      GoalResponse    `json:"targetGoal"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	BaseCurrency    string          `json:"baseCurrency"`
	Replayed        bool            `json:"replayed,omitempty"`
}

// InsufficientFundsDetail carries the balance detail returned when a funding
// transfer exceeds the Savings Goal balance.
type InsufficientFundsDetail struct {
	SavingsGoalCurrentAmount decimal.Decimal `json:"savingsGoalCurrentAmount"`
	RequestedAmount          decimal.Decimal `json:"requestedAmount"`
	BaseCurrency             string          `json:"baseCurrency"`
}

// GoalStatsResponse represents aggregated goal statistics.
type GoalStatsResponse struct {
	TotalGoals         int             `json:"totalGoals"`
	TotalTargetAmount  decimal.Decimal `json:"totalTargetAmount"`
	TotalCurrentAmount decimal.Decimal `json:"totalCurrentAmount"`
	CompletedGoals     int             `json:"completedGoals"`
	CompletionRate     int             `json:"completionRate"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	response := GoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Progress:      g.Progress(),
		Status:        string(g.Status),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}

	if g.Deadline != nil {
		dateStr := g.Deadline.Format("2006-01-02")
		response.Deadline = &dateStr
	}

	return response
}

// ToGoalListResponse converts a list of goals to response DTOs.
func ToGoalListResponse(goals []*entity.Goal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return responses
}

// ToFundGoalResponse converts a funding output to a FundGoalResponse DTO.
func ToFundGoalResponse(output *goal.FundGoalOutput) FundGoalResponse {
	return FundGoalResponse{
		SavingsGoal:     ToGoalResponse(output.SavingsGoal),
		TargetGoal:      ToGoalResponse(output.TargetGoal),
		ConvertedAmount: output.ConvertedAmount,
		BaseCurrency:    output.BaseCurrency,
		Replayed:        output.Replayed,
	}
}

// ToGoalStatsResponse converts goal statistics to a response DTO.
func ToGoalStatsResponse(stats entity.GoalStats) GoalStatsResponse {
	return GoalStatsResponse{
		TotalGoals:         stats.TotalGoals,
		TotalTargetAmount:  stats.TotalTargetAmount,
		TotalCurrentAmount: stats.TotalCurrentAmount,
		CompletedGoals:     stats.CompletedGoals,
		CompletionRate:     stats.CompletionRate,
	}
}
