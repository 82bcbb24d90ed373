// Package router builds the Echo router: global middleware, the error
// handler and every route.
package router

import (
	"github.com/deppfellow/expense-categories/internal/handler"
	"github.com/deppfellow/expense-categories/internal/middleware"
	"github.com/deppfellow/expense-categories/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires middleware and routes.
//
// Order matters: the request id and New Relic transaction must exist
// before ContextEnhancer builds the request logger, and the request
// logger and rate limiter read that logger.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerGreetingRoutes(router, h)
	registerCategoryRoutes(router, h)

	return router
}
