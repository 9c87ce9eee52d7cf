package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fundflow/backend/internal/application/usecase/notification"
	domainerror "github.com/fundflow/backend/internal/domain/error"
	"github.com/fundflow/backend/internal/integration/entrypoint/dto"
	"github.com/fundflow/backend/internal/integration/entrypoint/middleware"
)

// NotificationController handles in-app notification endpoints.
type NotificationController struct {
	listUseCase     *notification.ListNotificationsUseCase
	markReadUseCase *notification.MarkNotificationReadUseCase
	deleteUseCase   *notification.DeleteNotificationUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listUseCase *notification.ListNotificationsUseCase,
	markReadUseCase *notification.MarkNotificationReadUseCase,
	deleteUseCase *notification.DeleteNotificationUseCase,
) *NotificationController {
	return &NotificationController{
		listUseCase:     listUseCase,
		markReadUseCase: markReadUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// List handles GET /notifications requests. Pass unreadOnly=true to exclude
// read notifications.
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), notification.ListNotificationsInput{
		UserID:     userID,
		UnreadOnly: ctx.Query("unreadOnly") == "true",
	})
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Notifications retrieved successfully",
		Data: dto.ToNotificationListResponse(output.Notifications, output.UnreadCount),
	})
}

// MarkRead handles PATCH /notifications/:id/read requests.
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	notificationID, ok := parseIDParam(ctx, "Invalid notification ID format")
	if !ok {
		return
	}

	output, err := c.markReadUseCase.Execute(ctx.Request.Context(), notification.MarkNotificationReadInput{
		UserID:         userID,
		NotificationID: notificationID,
	})
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Notification marked as read",
		Data: dto.ToNotificationResponse(output.Notification),
	})
}

// Delete handles DELETE /notifications/:id requests.
func (c *NotificationController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	notificationID, ok := parseIDParam(ctx, "Invalid notification ID format")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), notification.DeleteNotificationInput{
		UserID:         userID,
		NotificationID: notificationID,
	})
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg: "Notification deleted successfully",
	})
}

// handleNotificationError maps notification errors to HTTP responses.
func (c *NotificationController) handleNotificationError(ctx *gin.Context, err error) {
	var notificationErr *domainerror.NotificationError
	if errors.As(err, &notificationErr) {
		status := http.StatusInternalServerError
		if notificationErr.Code == domainerror.ErrCodeNotificationNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Msg:   notificationErr.Message,
			Error: string(notificationErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Msg: "An internal error occurred",
	})
}
