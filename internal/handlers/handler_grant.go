package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/impact_api/internal/core/domain"
	portssvc "github.com/SscSPs/impact_api/internal/core/ports/services"
	"github.com/SscSPs/impact_api/internal/dto"
	"github.com/SscSPs/impact_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// grantHandler handles HTTP requests for one fund's grants.
type grantHandler struct {
	grantService    portssvc.GrantReaderSvc
	kind            domain.GrantKind
	defaultLanguage string
	now             func() time.Time
}

// registerGrantRoutes registers one route per fund. The fund's kind doubles as the
// response key, e.g. /max_impact_fund_grants answers {"max_impact_fund_grants": [...]}.
func registerGrantRoutes(rg *gin.RouterGroup, gs portssvc.GrantReaderSvc, defaultLanguage string, now func() time.Time) {
	for _, kind := range []domain.GrantKind{domain.GrantKindMaxImpactFund, domain.GrantKindAllGrantsFund} {
		h := &grantHandler{grantService: gs, kind: kind, defaultLanguage: defaultLanguage, now: now}
		rg.GET("/"+h.responseKey(), h.listGrants)
	}
}

func (h *grantHandler) responseKey() string {
	return string(h.kind) + "_grants"
}

// listGrants godoc
// @Summary List fund grants
// @Description Returns a fund's grants stamped within a date range, or the grant in effect at a donation date, with every allotment converted to the requested currency. Served as /max_impact_fund_grants and /all_grants_fund_grants.
// @Tags grants
// @Produce  json
// @Param   start_year query int false "Range start year (default 2000)"
// @Param   start_month query int false "Range start month (default 1)"
// @Param   end_year query int false "Range end year (default current year)"
// @Param   end_month query int false "Range end month (default 12)"
// @Param   donation_year query int false "Donation year, selects by donation date when given"
// @Param   donation_month query int false "Donation month (default 1)"
// @Param   donation_day query int false "Donation day (default 1)"
// @Param   conversion_year query int false "Convert every amount at this year instead of the grant date"
// @Param   conversion_month query int false "Conversion month (default 1)"
// @Param   conversion_day query int false "Conversion day (default 1)"
// @Param   currency query string false "ISO 4217 currency code"
// @Param   language query string false "Language code"
// @Success 200 {object} map[string]interface{} "Grants under the fund's key, plus optional warnings"
// @Failure 400 {object} dto.ErrorsResponse "Invalid query"
// @Failure 502 {object} dto.ErrorsResponse "Exchange rates unavailable"
// @Failure 500 {object} dto.ErrorsResponse "Failed to list grants"
// @Router /max_impact_fund_grants [get]
// @Router /all_grants_fund_grants [get]
func (h *grantHandler) listGrants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("grant_kind", string(h.kind)))

	now := h.now()
	var params dto.RecordQueryParams
	if !bindRecordQuery(c, logger, &params, now) {
		return
	}
	query := params.ToRecordQuery(now, h.defaultLanguage)

	report, err := h.grantService.ListGrants(c.Request.Context(), h.kind, query)
	if err != nil {
		respondError(c, logger, err, "Failed to list grants")
		return
	}

	body := gin.H{h.responseKey(): dto.ToGrantResponses(report)}
	if warnings := dto.GrantWarnings(report); warnings != nil {
		body["warnings"] = warnings
	}

	logger.Info("Grants listed successfully", slog.Int("count", len(report.Grants)))
	c.JSON(http.StatusOK, body)
}
