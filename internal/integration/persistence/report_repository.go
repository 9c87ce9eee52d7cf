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

// reportRepository implements the adapter.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// Create persists a report snapshot.
func (r *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	reportModel := model.ReportFromEntity(report)
	result := r.db.WithContext(ctx).Create(reportModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserID retrieves saved reports for a user, newest first.
func (r *reportRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Report, error) {
	var reportModels []model.ReportModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		Find(&reportModels)
	if result.Error != nil {
		return nil, result.Error
	}

	reports := make([]*entity.Report, len(reportModels))
	for i, rm := range reportModels {
		reports[i] = rm.ToEntity()
	}
	return reports, nil
}

// FindByID retrieves a saved report by its ID, scoped to the owning user.
func (r *reportRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Report, error) {
	var reportModel model.ReportModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&reportModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReportNotFound
		}
		return nil, result.Error
	}
	return reportModel.ToEntity(), nil
}
