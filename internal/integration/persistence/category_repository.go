// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
	"github.com/fundflow/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the registry.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByName retrieves a category by its name.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindAll retrieves all categories, optionally restricted to active ones.
func (r *categoryRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var categoryModels []model.CategoryModel
	result := query.Order("name ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// Update updates an existing category in the registry.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a category from the registry. Categories still referenced by
// budgets or transactions are refused.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domainerror.ErrCategoryNotFound
		}
		return result.Error
	}

	var budgetCount int64
	if err := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("category = ?", categoryModel.Name).
		Count(&budgetCount).Error; err != nil {
		return err
	}
	if budgetCount > 0 {
		return domainerror.ErrCategoryInUse
	}

	var transactionCount int64
	if err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("category = ?", categoryModel.Name).
		Count(&transactionCount).Error; err != nil {
		return err
	}
	if transactionCount > 0 {
		return domainerror.ErrCategoryInUse
	}

	return r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id).Error
}

// Seed inserts the default categories when the registry is empty.
func (r *categoryRepository) Seed(ctx context.Context, categories []*entity.Category) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	models := make([]*model.CategoryModel, len(categories))
	for i, c := range categories {
		models[i] = model.CategoryFromEntity(c)
	}
	return r.db.WithContext(ctx).Create(models).Error
}
