package handlers

import (
	"net/http"

	"github.com/SscSPs/daily_journal_app/cmd/docs"
	portssvc "github.com/SscSPs/daily_journal_app/internal/core/ports/services"
	"github.com/SscSPs/daily_journal_app/internal/middleware"
	"github.com/SscSPs/daily_journal_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// authLimiter may be nil to disable login throttling.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	authLimiter *limiter.Limiter,
) {
	// Every route sees the caller's identity; anonymous requests pass through.
	r.Use(middleware.SessionMiddleware(services.Journal, cfg.SessionCookieName))

	registerHomeRoutes(r, services.Journal)
	registerAuthRoutes(r, cfg, services.Journal, authLimiter)
	registerEntryRoutes(r, services.Journal, cfg.MaxUploadBytes)

	setupSwaggerRoutes(r, cfg)
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

// RegisterMetricsRoute mounts /metrics on the public router outside production.
// Production exposes metrics only on the dedicated METRICS_PORT listener.
func RegisterMetricsRoute(r *gin.Engine, cfg *config.Config, metricsHandler http.Handler) {
	if cfg.IsProduction || cfg.MetricsPort != "" {
		return
	}
	r.GET("/metrics", gin.WrapH(metricsHandler))
}
