package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/shoplist/internal/model"
	"github.com/deppfellow/shoplist/internal/server"
	"github.com/deppfellow/shoplist/internal/service"
)

// ReportService is what ReportHandler needs from service.ReportService.
type ReportService interface {
	SearchByName(ctx context.Context, term string) ([]model.ItemName, error)
	Paginate(ctx context.Context, pageNumber, pageSize int) ([]model.ShoppingItem, error)
	ItemsAfterDate(ctx context.Context, daysAgo int) ([]model.RecentItem, error)
	TotalCostByCategory(ctx context.Context) ([]model.CategoryTotal, error)
	EnqueueDigest(ctx context.Context, days int, recipient string) (*service.DigestRequest, error)
}

// ReportHandler serves the read-only reports under /api/v1/reports.
type ReportHandler struct {
	Handler
	reports ReportService
}

func NewReportHandler(s *server.Server, reports ReportService) *ReportHandler {
	return &ReportHandler{
		Handler: NewHandler(s),
		reports: reports,
	}
}

func (h *ReportHandler) Search() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *SearchRequest) (ListResponse[model.ItemName], error) {
		names, err := h.reports.SearchByName(c.Request().Context(), req.Term)
		return listOf(names), err
	}, http.StatusOK, func() *SearchRequest { return &SearchRequest{} })
}

// Page returns one page of items; size defaults to six.
func (h *ReportHandler) Page() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *PageRequest) (ListResponse[model.ShoppingItem], error) {
		items, err := h.reports.Paginate(c.Request().Context(), req.Page, req.Size)
		return listOf(items), err
	}, http.StatusOK, func() *PageRequest { return &PageRequest{} })
}

func (h *ReportHandler) Recent() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *RecentRequest) (ListResponse[model.RecentItem], error) {
		items, err := h.reports.ItemsAfterDate(c.Request().Context(), req.Days)
		return listOf(items), err
	}, http.StatusOK, func() *RecentRequest { return &RecentRequest{} })
}

func (h *ReportHandler) CategoryTotals() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *NoRequest) (ListResponse[model.CategoryTotal], error) {
		totals, err := h.reports.TotalCostByCategory(c.Request().Context())
		return listOf(totals), err
	}, http.StatusOK, func() *NoRequest { return &NoRequest{} })
}

// Digest queues a report digest email and answers 202 with the task id.
func (h *ReportHandler) Digest() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *DigestRequest) (*service.DigestRequest, error) {
		return h.reports.EnqueueDigest(c.Request().Context(), req.Days, req.Recipient)
	}, http.StatusAccepted, func() *DigestRequest { return &DigestRequest{} })
}
