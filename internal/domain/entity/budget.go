// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetDuration represents the recurring window a budget applies to.
type BudgetDuration string

const (
	BudgetDurationWeekly  BudgetDuration = "weekly"
	BudgetDurationMonthly BudgetDuration = "monthly"
	BudgetDurationYearly  BudgetDuration = "yearly"
)

// Budget represents a spending limit for a category over a recurring window.
// A user may have at most one budget per category.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Amount    decimal.Decimal
	Duration  BudgetDuration
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, category string, amount decimal.Decimal, duration BudgetDuration, currency string) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		Duration:  duration,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValidBudgetDuration reports whether the duration is a supported window.
func IsValidBudgetDuration(duration BudgetDuration) bool {
	return duration == BudgetDurationWeekly ||
		duration == BudgetDurationMonthly ||
		duration == BudgetDurationYearly
}

// BudgetRecommendation is the spend-vs-budget assessment for one budget over
// its current window.
type BudgetRecommendation struct {
	BudgetID   uuid.UUID
	Category   string
	Duration   BudgetDuration
	Amount     decimal.Decimal
	Spent      decimal.Decimal
	Percentage int
	Advice     string
}

// BudgetFilter narrows budget queries.
type BudgetFilter struct {
	Category *string
	Duration *BudgetDuration
}
