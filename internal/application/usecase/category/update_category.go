// Package category contains use cases for the global category registry.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for a category update. Nil fields
// are left unchanged.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	Name       *string
	Active     *bool
}

// UpdateCategoryOutput represents the output of a category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase renames or toggles a registry category. Deactivating
// keeps the category on historical records while blocking new usage.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"Category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryName,
				"category name is required",
				domainerror.ErrInvalidCategoryName,
			)
		}
		if name != category.Name {
			existing, err := uc.categoryRepo.FindByName(ctx, name)
			if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, fmt.Errorf("failed to check category existence: %w", err)
			}
			if existing != nil {
				return nil, domainerror.NewCategoryError(
					domainerror.ErrCodeCategoryAlreadyExists,
					"Category already exists",
					domainerror.ErrCategoryAlreadyExists,
				)
			}
			category.Name = name
		}
	}

	if input.Active != nil {
		category.Active = *input.Active
	}

	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
