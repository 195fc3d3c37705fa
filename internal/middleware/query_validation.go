package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/impact_api/internal/apperrors"
	portssvc "github.com/SscSPs/impact_api/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// QueryValidation rejects report requests naming an unsupported currency or language
// before they reach a handler. All problems are reported together under "errors".
func QueryValidation(validator portssvc.QueryValidatorSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		err := validator.Validate(c.Request.Context(), c.Query("currency"), c.Query("language"))
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, apperrors.ErrRateFetch):
			logger.Error("Exchange rates unavailable during query validation", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"errors": []string{"Exchange rates are currently unavailable"}})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Rejected report query", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": apperrors.MessagesOf(err)})
		default:
			logger.Error("Failed to validate report query", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"errors": []string{"Failed to validate query"}})
		}
	}
}
