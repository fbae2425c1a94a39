package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/zukafarm/reward-engine/internal/domain/error"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// httpStatusFor maps a domain error to the HTTP status code for the response
func httpStatusFor(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsQuotaExceededError(err), errors.Is(err, domainerr.ErrImpressionCapped):
		return http.StatusTooManyRequests
	case domainerr.IsDuplicateEngagementError(err), errors.Is(err, domainerr.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrSelfEngagement), domainerr.IsUnauthorizedError(err):
		return http.StatusForbidden
	case domainerr.IsInsufficientFundsError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrInvalidActionType),
		errors.Is(err, domainerr.ErrInvalidEngagementType),
		errors.Is(err, domainerr.ErrInvalidContentKind),
		errors.Is(err, domainerr.ErrInvalidRole):
		return http.StatusBadRequest
	case domainerr.IsTransientError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standardized error body for a domain error
func respondError(c *gin.Context, err error) {
	status := httpStatusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// Don't leak internals
		message = "Internal server error"
	}
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBadRequest writes a 400 with the invalid-request error code
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message,
	})
}
