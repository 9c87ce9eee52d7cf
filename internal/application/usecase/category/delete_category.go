// Package category contains use cases for the global category registry.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/application/adapter"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct{}

// DeleteCategoryUseCase removes a category from the registry.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"Category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		if errors.Is(err, domainerror.ErrCategoryInUse) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryInUse,
				"Category is referenced by existing budgets or transactions",
				domainerror.ErrCategoryInUse,
			)
		}
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{}, nil
}
