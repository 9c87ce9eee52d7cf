// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID, scoped to the owning user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByUserID retrieves all transactions for a user matching the filter,
	// ordered by date descending.
	FindByUserID(ctx context.Context, userID uuid.UUID, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database (soft delete), scoped to the owner.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// SumExpensesByCategory sums expense transaction amounts for a category
	// within the date range.
	SumExpensesByCategory(ctx context.Context, userID uuid.UUID, category string, startDate, endDate time.Time) (decimal.Decimal, error)
}
