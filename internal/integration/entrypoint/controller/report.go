package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/application/usecase/report"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
	"github.com/fundflow/backend/internal/integration/entrypoint/dto"
	"github.com/fundflow/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report endpoints.
type ReportController struct {
	trendsUseCase       *report.GetTrendsUseCase
	summaryUseCase      *report.GetSummaryUseCase
	goalProgressUseCase *report.GetGoalProgressUseCase
	insightsUseCase     *report.GetInsightsUseCase
	exportUseCase       *report.ExportReportUseCase
	saveUseCase         *report.SaveReportUseCase
	historyUseCase      *report.GetReportHistoryUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	trendsUseCase *report.GetTrendsUseCase,
	summaryUseCase *report.GetSummaryUseCase,
	goalProgressUseCase *report.GetGoalProgressUseCase,
	insightsUseCase *report.GetInsightsUseCase,
	exportUseCase *report.ExportReportUseCase,
	saveUseCase *report.SaveReportUseCase,
	historyUseCase *report.GetReportHistoryUseCase,
) *ReportController {
	return &ReportController{
		trendsUseCase:       trendsUseCase,
		summaryUseCase:      summaryUseCase,
		goalProgressUseCase: goalProgressUseCase,
		insightsUseCase:     insightsUseCase,
		exportUseCase:       exportUseCase,
		saveUseCase:         saveUseCase,
		historyUseCase:      historyUseCase,
	}
}

// Trends handles GET /reports/trends requests.
func (c *ReportController) Trends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	if ctx.Query("format") == "pdf" {
		c.exportPDF(ctx, report.ExportReportInput{
			UserID: userID,
			Type:   entity.ReportTypeTrends,
		})
		return
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), report.GetTrendsInput{UserID: userID})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	response := dto.ToTrendsResponse(output)
	c.saveIfRequested(ctx, userID, entity.ReportTypeTrends, map[string]interface{}{
		"totalIncome":  output.TotalIncome.String(),
		"totalExpense": output.TotalExpense.String(),
		"netBalance":   output.NetBalance.String(),
		"baseCurrency": output.BaseCurrency,
	})

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Trends retrieved successfully",
		Data: response,
	})
}

// Filter handles GET /reports/filter requests. Accepts startDate, endDate,
// category, and currency query parameters.
func (c *ReportController) Filter(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := report.GetSummaryInput{
		UserID:   userID,
		Currency: ctx.Query("currency"),
	}

	if startStr := ctx.Query("startDate"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Msg: "Invalid startDate format, expected YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &start
	}
	if endStr := ctx.Query("endDate"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Msg: "Invalid endDate format, expected YYYY-MM-DD",
			})
			return
		}
		input.EndDate = &end
	}
	if category := ctx.Query("category"); category != "" {
		input.Category = &category
	}

	if ctx.Query("format") == "pdf" {
		c.exportPDF(ctx, report.ExportReportInput{
			UserID:    userID,
			Type:      entity.ReportTypeSummary,
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			Category:  input.Category,
			Currency:  input.Currency,
		})
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	c.saveIfRequested(ctx, userID, entity.ReportTypeSummary, map[string]interface{}{
		"totalIncome":      output.TotalIncome.String(),
		"totalExpense":     output.TotalExpense.String(),
		"netBalance":       output.NetBalance.String(),
		"transactionCount": output.TransactionCount,
		"currency":         output.Currency,
	})

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Summary retrieved successfully",
		Data: dto.ToSummaryResponse(output),
	})
}

// Goal handles GET /reports/goal requests.
func (c *ReportController) Goal(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	if ctx.Query("format") == "pdf" {
		c.exportPDF(ctx, report.ExportReportInput{
			UserID: userID,
			Type:   entity.ReportTypeGoalProgress,
		})
		return
	}

	output, err := c.goalProgressUseCase.Execute(ctx.Request.Context(), report.GetGoalProgressInput{UserID: userID})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	goals := dto.ToGoalProgressListResponse(output.Goals)
	c.saveIfRequested(ctx, userID, entity.ReportTypeGoalProgress, map[string]interface{}{
		"goals": goals,
	})

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Goal progress retrieved successfully",
		Data: goals,
	})
}

// Insights handles GET /reports/insights requests.
func (c *ReportController) Insights(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), report.GetInsightsInput{UserID: userID})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Insights generated successfully",
		Data: dto.InsightsResponse{Insights: output.Insights},
	})
}

// History handles GET /reports/history requests.
func (c *ReportController) History(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), report.GetReportHistoryInput{UserID: userID})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Report history retrieved successfully",
		Data: dto.ToReportHistoryListResponse(output.Reports),
	})
}

// exportPDF renders the requested report as PDF and streams it back.
func (c *ReportController) exportPDF(ctx *gin.Context, input report.ExportReportInput) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, "application/pdf", output.PDF)
}

// saveIfRequested persists a report snapshot when save=true. Failures are
// logged, not surfaced; the report itself was produced.
func (c *ReportController) saveIfRequested(ctx *gin.Context, userID uuid.UUID, reportType entity.ReportType, payload map[string]interface{}) {
	if ctx.Query("save") != "true" {
		return
	}

	_, err := c.saveUseCase.Execute(ctx.Request.Context(), report.SaveReportInput{
		UserID:  userID,
		Type:    reportType,
		Payload: payload,
	})
	if err != nil {
		slog.Error("Failed to save report snapshot",
			"user_id", userID,
			"type", reportType,
			"error", err,
		)
	}
}

// handleReportError maps report errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(c.statusCodeForReportError(reportErr.Code), dto.ErrorResponse{
			Msg:   reportErr.Message,
			Error: string(reportErr.Code),
		})
		return
	}

	var currencyErr *domainerror.CurrencyError
	if errors.As(err, &currencyErr) {
		ctx.JSON(statusCodeForCurrencyError(currencyErr.Code), dto.ErrorResponse{
			Msg:   currencyErr.Message,
			Error: string(currencyErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Msg: "An internal error occurred",
	})
}

// statusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) statusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDateRange, domainerror.ErrCodeInvalidReportFormat:
		return http.StatusBadRequest
	case domainerror.ErrCodeReportNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePDFRenderFailed, domainerror.ErrCodeInsightsUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
