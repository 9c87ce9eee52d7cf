// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// SaveReportInput represents the input for saving a report snapshot.
type SaveReportInput struct {
	UserID  uuid.UUID
	Type    entity.ReportType
	Payload map[string]interface{}
}

// SaveReportOutput represents the saved snapshot.
type SaveReportOutput struct {
	Report *entity.Report
}

// SaveReportUseCase persists a generated report for later retrieval.
type SaveReportUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewSaveReportUseCase creates a new SaveReportUseCase instance.
func NewSaveReportUseCase(reportRepo adapter.ReportRepository) *SaveReportUseCase {
	return &SaveReportUseCase{
		reportRepo: reportRepo,
	}
}

// Execute persists the snapshot.
func (uc *SaveReportUseCase) Execute(ctx context.Context, input SaveReportInput) (*SaveReportOutput, error) {
	switch input.Type {
	case entity.ReportTypeTrends, entity.ReportTypeSummary, entity.ReportTypeGoalProgress:
	default:
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportFormat,
			"unsupported report type",
			domainerror.ErrInvalidReportFormat,
		)
	}

	report := entity.NewReport(input.UserID, input.Type, input.Payload)

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	return &SaveReportOutput{
		Report: report,
	}, nil
}
