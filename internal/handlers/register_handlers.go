package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/fin_assist/cmd/docs"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/middleware"
	"github.com/SscSPs/fin_assist/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

const healthCheckTimeout = 2 * time.Second

type routerOptions struct {
	health   portsrepo.HealthChecker
	gatherer prometheus.Gatherer
	limiter  *limiter.Limiter
	now      func() time.Time
}

// RouterOption configures optional infrastructure of the router.
type RouterOption func(*routerOptions)

// WithHealthChecker makes /health ping the store.
func WithHealthChecker(h portsrepo.HealthChecker) RouterOption {
	return func(o *routerOptions) { o.health = h }
}

// WithMetricsGatherer exposes the gatherer on /metrics.
func WithMetricsGatherer(g prometheus.Gatherer) RouterOption {
	return func(o *routerOptions) { o.gatherer = g }
}

// WithRateLimiter limits /api/v1 per client IP.
func WithRateLimiter(l *limiter.Limiter) RouterOption {
	return func(o *routerOptions) { o.limiter = l }
}

// WithClock replaces time.Now, used for future-date checks and default periods.
func WithClock(now func() time.Time) RouterOption {
	return func(o *routerOptions) { o.now = now }
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts ...RouterOption,
) {
	o := routerOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	r.GET("/health", healthHandler(o.health))

	if o.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(o.gatherer, promhttp.HandlerOpts{})))
	}

	setupAPIV1Routes(r, cfg, services, o)

	setupSwaggerRoutes(r, cfg)
}

// healthHandler godoc
// @Summary Health check
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {string} string "Store unavailable"
// @Router /health [get]
func healthHandler(h portsrepo.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
			defer cancel()
			if err := h.Ping(ctx); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
				c.String(http.StatusServiceUnavailable, "Store unavailable")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	o routerOptions,
) {
	v1 := r.Group("/api/v1")
	if o.limiter != nil {
		v1.Use(middleware.RateLimit(o.limiter))
	}
	if cfg.AuthEnabled {
		v1.Use(middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	}

	registerTransactionRoutes(v1, service.Ledger, o.now)
	registerCategoryRoutes(v1, service.Category, service.Reporting)
	registerBudgetRoutes(v1, service.Budget)
	registerGoalRoutes(v1, service.Goal, service.Reporting)
	registerReportingRoutes(v1, service.Reporting, o.now)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
