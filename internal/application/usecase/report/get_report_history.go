// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
)

// GetReportHistoryInput represents the input for the saved report listing.
type GetReportHistoryInput struct {
	UserID uuid.UUID
}

// GetReportHistoryOutput represents the saved report listing.
type GetReportHistoryOutput struct {
	Reports []*entity.Report
}

// GetReportHistoryUseCase lists a user's saved report snapshots newest first.
type GetReportHistoryUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewGetReportHistoryUseCase creates a new GetReportHistoryUseCase instance.
func NewGetReportHistoryUseCase(reportRepo adapter.ReportRepository) *GetReportHistoryUseCase {
	return &GetReportHistoryUseCase{
		reportRepo: reportRepo,
	}
}

// Execute performs the listing.
func (uc *GetReportHistoryUseCase) Execute(ctx context.Context, input GetReportHistoryInput) (*GetReportHistoryOutput, error) {
	reports, err := uc.reportRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return &GetReportHistoryOutput{
		Reports: reports,
	}, nil
}
