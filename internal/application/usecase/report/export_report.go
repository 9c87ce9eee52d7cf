package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// ExportReportInput represents the input for a PDF export. Type selects
// which report is rendered; the filters apply to the summary report only.
type ExportReportInput struct {
	UserID    uuid.UUID
	Type      entity.ReportType
	StartDate *time.Time
	EndDate   *time.Time
	Category  *string
	Currency  string
}

// ExportReportOutput represents the rendered PDF.
type ExportReportOutput struct {
	PDF      []byte
	Filename string
}

// ExportReportUseCase renders a report to PDF through the external rendering
// service.
type ExportReportUseCase struct {
	trends       *GetTrendsUseCase
	summary      *GetSummaryUseCase
	goalProgress *GetGoalProgressUseCase
	userRepo     adapter.UserRepository
	renderer     adapter.PDFRenderer
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(
	trends *GetTrendsUseCase,
	summary *GetSummaryUseCase,
	goalProgress *GetGoalProgressUseCase,
	userRepo adapter.UserRepository,
	renderer adapter.PDFRenderer,
) *ExportReportUseCase {
	return &ExportReportUseCase{
		trends:       trends,
		summary:      summary,
		goalProgress: goalProgress,
		userRepo:     userRepo,
		renderer:     renderer,
	}
}

// Execute renders the report.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input ExportReportInput) (*ExportReportOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	var doc adapter.ReportDocument
	switch input.Type {
	case entity.ReportTypeTrends:
		doc, err = uc.trendsDocument(ctx, input.UserID)
	case entity.ReportTypeGoalProgress:
		doc, err = uc.goalProgressDocument(ctx, input.UserID)
	default:
		doc, err = uc.summaryDocument(ctx, input)
	}
	if err != nil {
		return nil, err
	}
	doc.UserName = user.Name

	pdf, err := uc.renderer.Render(ctx, doc)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodePDFRenderFailed,
			"Failed to render report",
			err,
		)
	}

	filename := fmt.Sprintf("%s-%s.pdf", input.Type, time.Now().UTC().Format("2006-01-02"))

	return &ExportReportOutput{
		PDF:      pdf,
		Filename: filename,
	}, nil
}

func (uc *ExportReportUseCase) summaryDocument(ctx context.Context, input ExportReportInput) (adapter.ReportDocument, error) {
	summary, err := uc.summary.Execute(ctx, GetSummaryInput{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Category:  input.Category,
		Currency:  input.Currency,
	})
	if err != nil {
		return adapter.ReportDocument{}, err
	}

	return adapter.ReportDocument{
		Title: "Financial Summary",
		Sections: []adapter.ReportSection{
			{
				Heading: "Totals",
				Rows: []adapter.ReportRow{
					{Label: "Total Income", Value: summary.TotalIncome.StringFixed(2) + " " + summary.Currency},
					{Label: "Total Expense", Value: summary.TotalExpense.StringFixed(2) + " " + summary.Currency},
					{Label: "Net Balance", Value: summary.NetBalance.StringFixed(2) + " " + summary.Currency},
					{Label: "Transactions", Value: fmt.Sprintf("%d", summary.TransactionCount)},
				},
			},
		},
	}, nil
}

func (uc *ExportReportUseCase) trendsDocument(ctx context.Context, userID uuid.UUID) (adapter.ReportDocument, error) {
	trends, err := uc.trends.Execute(ctx, GetTrendsInput{UserID: userID})
	if err != nil {
		return adapter.ReportDocument{}, err
	}

	doc := adapter.ReportDocument{
		Title: "Spending Trends",
		Sections: []adapter.ReportSection{
			{
				Heading: "Totals",
				Rows: []adapter.ReportRow{
					{Label: "Total Income", Value: trends.TotalIncome.StringFixed(2) + " " + trends.BaseCurrency},
					{Label: "Total Expense", Value: trends.TotalExpense.StringFixed(2) + " " + trends.BaseCurrency},
					{Label: "Net Balance", Value: trends.NetBalance.StringFixed(2) + " " + trends.BaseCurrency},
				},
			},
		},
	}

	categories := make([]string, 0, len(trends.ByCategory))
	for category := range trends.ByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	breakdown := adapter.ReportSection{Heading: "By Category"}
	for _, category := range categories {
		split := trends.ByCategory[category]
		breakdown.Rows = append(breakdown.Rows, adapter.ReportRow{
			Label: category,
			Value: fmt.Sprintf("income %s / expense %s %s",
				split.Income.StringFixed(2), split.Expense.StringFixed(2), trends.BaseCurrency),
		})
	}
	if len(breakdown.Rows) > 0 {
		doc.Sections = append(doc.Sections, breakdown)
	}

	return doc, nil
}

func (uc *ExportReportUseCase) goalProgressDocument(ctx context.Context, userID uuid.UUID) (adapter.ReportDocument, error) {
	progress, err := uc.goalProgress.Execute(ctx, GetGoalProgressInput{UserID: userID})
	if err != nil {
		return adapter.ReportDocument{}, err
	}

	section := adapter.ReportSection{Heading: "Goals"}
	for _, goal := range progress.Goals {
		section.Rows = append(section.Rows, adapter.ReportRow{
			Label: goal.Name,
			Value: fmt.Sprintf("%s of %s (%d%%, %s)",
				goal.CurrentAmount.StringFixed(2), goal.TargetAmount.StringFixed(2),
				goal.Progress, goal.Status),
		})
	}

	return adapter.ReportDocument{
		Title:    "Goal Progress",
		Sections: []adapter.ReportSection{section},
	}, nil
}
