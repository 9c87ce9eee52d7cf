// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID, scoped to the owning user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindSavingsGoal retrieves the user's designated Savings Goal.
	FindSavingsGoal(ctx context.Context, userID uuid.UUID) (*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal from the database (soft delete), scoped to the owner.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// ExistsByUserAndName checks if the user already has a goal with the given name.
	ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string) (bool, error)

	// Transfer atomically persists both sides of a funding transfer plus the
	// transfer record in a single database transaction.
	Transfer(ctx context.Context, transfer *entity.GoalTransfer, savings, target *entity.Goal) error

	// FindTransferByToken retrieves a recorded transfer by its idempotency token.
	// Returns nil when no transfer with the token exists.
	FindTransferByToken(ctx context.Context, userID uuid.UUID, token string) (*entity.GoalTransfer, error)
}
