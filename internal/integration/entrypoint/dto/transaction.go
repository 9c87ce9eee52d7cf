package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type     string          `json:"type" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency,omitempty"`
	Category string          `json:"category" binding:"required"`
	Date     *string         `json:"date,omitempty"`
	Tags     []string        `json:"tags,omitempty"`
	Notes    string          `json:"notes,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type     *string          `json:"type,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Category *string          `json:"category,omitempty"`
	Date     *string          `json:"date,omitempty"`
	Tags     *[]string        `json:"tags,omitempty"`
	Notes    *string          `json:"notes,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Date      string          `json:"date"`
	Tags      []string        `json:"tags,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID.String(),
		Type:      string(t.Type),
		Amount:    t.Amount,
		Category:  t.Category,
		Date:      t.Date.Format("2006-01-02"),
		Tags:      t.Tags,
		Notes:     t.Notes,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list of transactions to response DTOs.
func ToTransactionListResponse(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return responses
}
