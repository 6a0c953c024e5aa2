// Package router builds the Echo instance: global middleware in order,
// system routes and the versioned API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/shoplist/internal/handler"
	"github.com/deppfellow/shoplist/internal/middleware"
	"github.com/deppfellow/shoplist/internal/server"
	"github.com/deppfellow/shoplist/internal/service"
)

// NewRouter returns the configured Echo instance.
//
// Middleware order matters: the request id must exist before the context
// logger is built, the New Relic transaction before EnhanceTracing, and the
// rate limiter runs inside the request logger so rejections are logged.
func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	// Writes require a Clerk session only when a secret key is configured.
	var writeGuard []echo.MiddlewareFunc
	if services.Auth.Enabled() {
		writeGuard = append(writeGuard, middlewares.Auth.RequireAuth)
	}

	v1 := router.Group("/api/v1")
	registerItemRoutes(v1, h.Items, writeGuard)
	registerReportRoutes(v1, h.Reports, writeGuard)

	return router
}
