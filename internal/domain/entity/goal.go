// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle status of a savings goal.
type GoalStatus string

const (
	GoalStatusInProgress GoalStatus = "In Progress"
	GoalStatusCompleted  GoalStatus = "Completed"
)

// SavingsGoalName is the reserved name of the designated pooled-funds goal
// from which transfers to other goals are drawn. Each user has at most one.
const SavingsGoalName = "Savings Goal"

// MinGoalNameLength is the minimum length for a goal name.
const MinGoalNameLength = 3

// Goal represents a savings goal in the FundFlow system. All monetary amounts
// are stored in the base currency.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	Status        GoalStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity with a zero current amount.
func NewGoal(userID uuid.UUID, name string, targetAmount decimal.Decimal, deadline *time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		Status:        GoalStatusInProgress,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsSavingsGoal reports whether this goal is the user's pooled Savings Goal.
func (g *Goal) IsSavingsGoal() bool {
	return g.Name == SavingsGoalName
}

// IsCompleted reports whether the goal has reached its target.
func (g *Goal) IsCompleted() bool {
	return g.Status == GoalStatusCompleted
}

// Credit increases the current amount by the given amount, capped at the
// target amount, and returns the amount actually applied. The status is
// synchronized afterwards.
func (g *Goal) Credit(amount decimal.Decimal) decimal.Decimal {
	applied := amount
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if applied.GreaterThan(remaining) {
		applied = remaining
	}
	g.CurrentAmount = g.CurrentAmount.Add(applied)
	g.SyncStatus()
	return applied
}

// Debit decreases the current amount by the given amount, floored at zero,
// and returns the amount actually removed. The status is synchronized
// afterwards.
func (g *Goal) Debit(amount decimal.Decimal) decimal.Decimal {
	applied := amount
	if applied.GreaterThan(g.CurrentAmount) {
		applied = g.CurrentAmount
	}
	g.CurrentAmount = g.CurrentAmount.Sub(applied)
	g.SyncStatus()
	return applied
}

// SyncStatus enforces the lifecycle invariant: the goal is Completed exactly
// when the current amount equals the target amount.
func (g *Goal) SyncStatus() {
	if g.CurrentAmount.Equal(g.TargetAmount) {
		g.Status = GoalStatusCompleted
	} else {
		g.Status = GoalStatusInProgress
	}
}

// Progress returns the completion percentage of the goal, rounded to the
// nearest integer and capped at 100.
func (g *Goal) Progress() int {
	if g.TargetAmount.IsZero() {
		return 0
	}
	pct := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(0)
	progress := int(pct.IntPart())
	if progress > 100 {
		progress = 100
	}
	return progress
}

// GoalStats represents aggregated statistics over a user's goals.
type GoalStats struct {
	TotalGoals         int
	TotalTargetAmount  decimal.Decimal
	TotalCurrentAmount decimal.Decimal
	CompletedGoals     int
	CompletionRate     int
}
