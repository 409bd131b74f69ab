package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/dto"
	"github.com/jdvanegasm/proticket/pkg/logger"
)

// handleError maps a domain error to its HTTP status and error envelope.
// Anything unclassified is a storage or infrastructure failure and comes
// back as 500 without leaking the underlying error text.
func handleError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "not_found",
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})
	case domain.IsValidationError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		})
	case domain.IsConflictError(err):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:   "conflict",
			Code:    "CONFLICT",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "unauthorized",
			Code:    "AUTHENTICATION_REQUIRED",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrAuthorizationDenied):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Error:   "forbidden",
			Code:    "AUTHORIZATION_DENIED",
			Message: err.Error(),
		})
	default:
		logger.Get().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Code:    "INTERNAL_ERROR",
			Message: "an unexpected error occurred",
		})
	}
}

// badRequest rejects a request whose body or parameters failed binding
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "validation_error",
		Code:    "VALIDATION_ERROR",
		Message: message,
	})
}

// parseIDParam parses a numeric path parameter, failing the request with the
// given domain error when it is not a positive integer
func parseIDParam(c *gin.Context, name string, invalid error) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		handleError(c, invalid)
		return 0, false
	}
	return id, true
}

// parseUUIDParam parses a uuid path parameter, failing the request with the
// given domain error when it is malformed. The uuid columns reject malformed
// values anyway; checking here keeps that a 404 instead of a storage failure.
func parseUUIDParam(c *gin.Context, name string, invalid error) (string, bool) {
	raw := c.Param(name)
	if _, err := uuid.Parse(raw); err != nil {
		handleError(c, invalid)
		return "", false
	}
	return raw, true
}
