package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/impact_api/internal/core/ports/services"
	"github.com/SscSPs/impact_api/internal/dto"
	"github.com/SscSPs/impact_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// evaluationHandler handles HTTP requests related to charity evaluations.
type evaluationHandler struct {
	evaluationService portssvc.EvaluationReaderSvc
	defaultLanguage   string
	now               func() time.Time
}

func newEvaluationHandler(es portssvc.EvaluationReaderSvc, defaultLanguage string, now func() time.Time) *evaluationHandler {
	return &evaluationHandler{evaluationService: es, defaultLanguage: defaultLanguage, now: now}
}

// registerEvaluationRoutes registers routes related to evaluations.
func registerEvaluationRoutes(rg *gin.RouterGroup, es portssvc.EvaluationReaderSvc, defaultLanguage string, now func() time.Time) {
	h := newEvaluationHandler(es, defaultLanguage, now)
	rg.GET("/evaluations", h.listEvaluations)
}

// listEvaluations godoc
// @Summary List charity evaluations
// @Description Returns evaluations stamped within a date range, or the evaluation in effect for each charity at a donation date, with the cost per output converted to the requested currency.
// @Tags evaluations
// @Produce  json
// @Param   start_year query int false "Range start year (default 2000)"
// @Param   start_month query int false "Range start month (default 1)"
// @Param   end_year query int false "Range end year (default current year)"
// @Param   end_month query int false "Range end month (default 12)"
// @Param   donation_year query int false "Donation year, selects by donation date when given"
// @Param   donation_month query int false "Donation month (default 1)"
// @Param   donation_day query int false "Donation day (default 1)"
// @Param   conversion_year query int false "Convert every amount at this year instead of the record date"
// @Param   conversion_month query int false "Conversion month (default 1)"
// @Param   conversion_day query int false "Conversion day (default 1)"
// @Param   charity_abbreviation query []string false "Charity abbreviations" collectionFormat(multi)
// @Param   currency query string false "ISO 4217 currency code"
// @Param   language query string false "Language code"
// @Success 200 {object} dto.EvaluationsResponse
// @Failure 400 {object} dto.ErrorsResponse "Invalid query"
// @Failure 502 {object} dto.ErrorsResponse "Exchange rates unavailable"
// @Failure 500 {object} dto.ErrorsResponse "Failed to list evaluations"
// @Router /evaluations [get]
func (h *evaluationHandler) listEvaluations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	now := h.now()
	var params dto.RecordQueryParams
	if !bindRecordQuery(c, logger, &params, now) {
		return
	}
	query := params.ToRecordQuery(now, h.defaultLanguage)

	report, err := h.evaluationService.ListEvaluations(c.Request.Context(), query)
	if err != nil {
		respondError(c, logger, err, "Failed to list evaluations")
		return
	}

	logger.Info("Evaluations listed successfully", slog.Int("count", len(report.Evaluations)))
	c.JSON(http.StatusOK, dto.ToEvaluationsResponse(report))
}
