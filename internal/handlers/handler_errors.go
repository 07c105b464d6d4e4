package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finsight_dashboard/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// writeServiceError maps a service error to a status code and an error body.
// failureMsg is used for unexpected errors.
func writeServiceError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNoSelection):
		logger.Warn("Bulk action without selection")
		c.JSON(http.StatusConflict, gin.H{"error": "No transactions selected"})
	case errors.Is(err, apperrors.ErrAIUnavailable):
		logger.Warn("AI service unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service unavailable"})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}
