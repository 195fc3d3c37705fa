package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/impact_api/internal/core/ports/services"
	"github.com/SscSPs/impact_api/internal/dto"
	"github.com/SscSPs/impact_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	converter portssvc.CurrencyConverterSvc
	validator portssvc.QueryValidatorSvc
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, converter portssvc.CurrencyConverterSvc, validator portssvc.QueryValidatorSvc) {
	h := &currencyHandler{converter: converter, validator: validator}
	rg.GET("/currencies", h.listCurrencies)
}

// listCurrencies godoc
// @Summary List supported currencies and languages
// @Description Retrieves the currency codes amounts can be converted to and the accepted language codes
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.CurrenciesResponse
// @Failure 502 {object} dto.ErrorsResponse "Exchange rates unavailable"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.converter.SupportedCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list currencies")
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.CurrenciesResponse{Currencies: currencies, Languages: h.validator.SupportedLanguages()})
}
