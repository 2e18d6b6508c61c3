package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/octobees/prompt-relay/api/internal/config"
	"github.com/octobees/prompt-relay/api/internal/handler"
	"github.com/octobees/prompt-relay/api/internal/metrics"
	middlewarepkg "github.com/octobees/prompt-relay/api/internal/middleware"
)

// AskPath is the single relay endpoint.
const AskPath = "/ask"

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Ask    *handler.AskHandler
	Health *handler.HealthHandler
}

// New builds an echo instance with middleware and routes installed.
func New(cfg *config.Config, log *zap.Logger, handlers Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(log))
	e.Use(metrics.Middleware())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{cfg.AllowedOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete, http.MethodOptions},
	}))

	Register(e, cfg, handlers)
	return e
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", handlers.Health.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST(AskPath, handlers.Ask.Ask, middlewarepkg.RateLimiter(AskPath, cfg.RateLimitAsk))
}
