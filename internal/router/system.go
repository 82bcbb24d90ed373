package router

import (
	"github.com/deppfellow/expense-categories/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers health and docs endpoints.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
