package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/shoplist/internal/handler"
)

func registerItemRoutes(api *echo.Group, h *handler.ItemHandler, writeGuard []echo.MiddlewareFunc) {
	items := api.Group("/items")

	items.GET("", h.List())
	items.GET("/:id", h.Get())
	items.POST("", h.Create(), writeGuard...)
	items.PATCH("/:id", h.Update(), writeGuard...)
	items.DELETE("/:id", h.Delete(), writeGuard...)
}

func registerReportRoutes(api *echo.Group, h *handler.ReportHandler, writeGuard []echo.MiddlewareFunc) {
	reports := api.Group("/reports")

	reports.GET("/search", h.Search())
	reports.GET("/page/:page", h.Page())
	reports.GET("/recent", h.Recent())
	reports.GET("/category-totals", h.CategoryTotals())
	reports.POST("/digest", h.Digest(), writeGuard...)
}
