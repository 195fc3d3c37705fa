package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/impact_api/internal/apperrors"
	"github.com/SscSPs/impact_api/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error to a status and an {"errors": [...]} body.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"errors": apperrors.MessagesOf(err)})
	case errors.Is(err, apperrors.ErrUnsupportedCurrency), errors.Is(err, apperrors.ErrUnsupportedLanguage):
		logger.Warn("Unsupported conversion target", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"errors": apperrors.MessagesOf(err)})
	case errors.Is(err, apperrors.ErrRateFetch):
		logger.Error("Exchange rates unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"errors": []string{"Exchange rates are currently unavailable"}})
	case errors.Is(err, apperrors.ErrRateUnavailable):
		logger.Error("No exchange rate for conversion date", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"errors": []string{"No exchange rate available for the conversion date"}})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"errors": []string{fallback}})
	}
}

// bindRecordQuery parses and checks the shared report parameters, writing a 400 and
// returning false when they are invalid.
func bindRecordQuery(c *gin.Context, logger *slog.Logger, params *dto.RecordQueryParams, now time.Time) bool {
	if err := c.ShouldBindQuery(params); err != nil {
		logger.Warn("Failed to bind report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.BindingErrorMessages(err)})
		return false
	}
	if err := params.Validate(now); err != nil {
		logger.Warn("Invalid report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"errors": apperrors.MessagesOf(err)})
		return false
	}
	return true
}

