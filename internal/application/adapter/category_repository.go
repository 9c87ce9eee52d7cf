// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for the global category registry.
type CategoryRepository interface {
	// Create creates a new category in the registry.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves a category by its name.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// FindAll retrieves all categories, optionally restricted to active ones.
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.Category, error)

	// Update updates an existing category in the registry.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the registry (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// Seed inserts the default categories when the registry is empty.
	Seed(ctx context.Context, categories []*entity.Category) error
}
