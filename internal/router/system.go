package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/shoplist/internal/handler"
)

func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
}
