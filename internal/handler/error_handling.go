package handler

import (
	"errors"
	"net/http"

	"legacy-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var errResp models.ErrorResponse

	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		statusCode = http.StatusNotFound
		errResp = models.ErrorResponse{Code: models.ErrCodeSessionNotFound, Message: "Session not found or expired"}
	case errors.Is(err, models.ErrProjectNotFound):
		statusCode = http.StatusNotFound
		errResp = models.ErrorResponse{Code: models.ErrCodeProjectNotFound, Message: "Project not found"}
	case errors.Is(err, models.ErrWrongStep):
		statusCode = http.StatusConflict
		errResp = models.ErrorResponse{Code: models.ErrCodeWrongStep, Message: "Operation not allowed at the session's current step"}
	case errors.Is(err, models.ErrNotConfirmed):
		statusCode = http.StatusConflict
		errResp = models.ErrorResponse{Code: models.ErrCodeNotConfirmed, Message: "Project must be confirmed first"}
	case errors.Is(err, models.ErrUnknownLegacyType),
		errors.Is(err, models.ErrUnknownAudience),
		errors.Is(err, models.ErrUnknownDeliveryFormat),
		errors.Is(err, models.ErrUnknownTimeline),
		errors.Is(err, models.ErrUnknownQuestion),
		errors.Is(err, models.ErrInvalidAnswer),
		errors.Is(err, models.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		errResp = models.ErrorResponse{Code: models.ErrCodeValidation, Message: err.Error()}
	case errors.Is(err, models.ErrBadRequest):
		statusCode = http.StatusBadRequest
		errResp = models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: err.Error()}
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResp = models.ErrorResponse{Code: models.ErrCodeInternal, Message: "An unexpected internal error occurred"}
	}

	c.AbortWithStatusJSON(statusCode, errResp)
}
