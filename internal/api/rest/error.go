package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/travelmate/community-hub/internal/api/shared/errors"
	"github.com/travelmate/community-hub/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    apierrors.ErrorCode `json:"code"`
	Message string              `json:"message"`
	Details string              `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code apierrors.ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, apierrors.ErrCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, apierrors.ErrCodeNotFound, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, apierrors.ErrCodeValidationFailed, "Validation failed", details)
}

// respondInternalError sends a 500 Internal Server Error response and logs
// the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, apierrors.ErrCodeInternalError, message)
}

// respondAPIError maps a structured API error to its HTTP status
func respondAPIError(c *gin.Context, err error, fallbackMessage string) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		respondInternalError(c, err, fallbackMessage)
		return
	}

	status := http.StatusInternalServerError
	switch apiErr.Code {
	case apierrors.ErrCodeBadRequest, apierrors.ErrCodeValidationFailed:
		status = http.StatusBadRequest
	case apierrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apierrors.ErrCodeUnauthorized:
		status = http.StatusUnauthorized
	case apierrors.ErrCodeForbidden:
		status = http.StatusForbidden
	case apierrors.ErrCodeConflict:
		status = http.StatusConflict
	case apierrors.ErrCodeLedgerError:
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		logger.Error(err)
	}

	respondWithError(c, status, apiErr.Code, apiErr.Message, apiErr.Details)
}
