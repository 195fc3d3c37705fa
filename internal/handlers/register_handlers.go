package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/impact_api/cmd/docs"
	portssvc "github.com/SscSPs/impact_api/internal/core/ports/services"
	"github.com/SscSPs/impact_api/internal/dto"
	"github.com/SscSPs/impact_api/internal/middleware"
	"github.com/SscSPs/impact_api/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteOptions carries what the routes need besides the services.
type RouteOptions struct {
	// Limiter throttles report requests per client; nil disables rate limiting.
	Limiter *limiter.Limiter
	// Now stamps request defaults such as the end of the range; nil means time.Now.
	Now func() time.Time
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts RouteOptions,
) {
	dto.UseFormFieldNames()
	if opts.Now == nil {
		opts.Now = time.Now
	}

	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupReportRoutes(r, cfg, services, opts)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupReportRoutes configures the public report endpoints.
func setupReportRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts RouteOptions,
) {
	api := r.Group("")
	if opts.Limiter != nil {
		api.Use(middleware.RateLimit(opts.Limiter))
	}

	registerCurrencyRoutes(api, services.Converter, services.Validator)

	reports := api.Group("", middleware.QueryValidation(services.Validator))
	registerEvaluationRoutes(reports, services.Evaluation, cfg.DefaultLanguage, opts.Now)
	registerGrantRoutes(reports, services.Grant, cfg.DefaultLanguage, opts.Now)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
