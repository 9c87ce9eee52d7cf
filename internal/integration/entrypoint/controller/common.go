package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/fundflow/backend/internal/domain/error"
	"github.com/fundflow/backend/internal/integration/entrypoint/dto"
)

// respondUnauthenticated writes the standard 401 response for requests that
// reach a protected handler without a resolved user.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Msg:   "User not authenticated",
		Error: string(domainerror.ErrCodeMissingToken),
	})
}

// parseIDParam parses the ":id" path parameter as a UUID, writing a 400
// response on failure.
func parseIDParam(ctx *gin.Context, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Msg: message,
		})
		return uuid.Nil, false
	}
	return id, true
}

// statusCodeForCurrencyError maps currency error codes to HTTP status codes.
// Rate lookup failures are upstream failures.
func statusCodeForCurrencyError(code domainerror.CurrencyErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnsupportedCurrency:
		return http.StatusBadRequest
	case domainerror.ErrCodeRateLookupFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
