// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalTransfer records a funding transfer from the Savings Goal to a target
// goal. The optional token is a client-supplied idempotency key: retrying a
// transfer with the same token replays the recorded result instead of moving
// funds twice.
type GoalTransfer struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Token        *string
	SourceGoalID uuid.UUID
	TargetGoalID uuid.UUID
	Amount       decimal.Decimal // Converted amount, in the base currency
	Currency     string          // Base currency code
	CreatedAt    time.Time
}

// NewGoalTransfer creates a new GoalTransfer record.
func NewGoalTransfer(userID uuid.UUID, token *string, sourceGoalID, targetGoalID uuid.UUID, amount decimal.Decimal, currency string) *GoalTransfer {
	return &GoalTransfer{
		ID:           uuid.New(),
		UserID:       userID,
		Token:        token,
		SourceGoalID: sourceGoalID,
		TargetGoalID: targetGoalID,
		Amount:       amount,
		Currency:     currency,
		CreatedAt:    time.Now().UTC(),
	}
}
