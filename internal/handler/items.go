package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/shoplist/internal/model"
	"github.com/deppfellow/shoplist/internal/server"
)

// ItemService is what ItemHandler needs from service.ShoppingListService.
type ItemService interface {
	List(ctx context.Context) ([]model.ShoppingItem, error)
	Create(ctx context.Context, fields model.ItemFields) (*model.ShoppingItem, error)
	MustGetByID(ctx context.Context, id int64) (*model.ShoppingItem, error)
	Update(ctx context.Context, id int64, fields model.ItemFields) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ItemHandler serves shopping item CRUD under /api/v1/items.
type ItemHandler struct {
	Handler
	items ItemService
}

func NewItemHandler(s *server.Server, items ItemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

func (h *ItemHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *NoRequest) (ListResponse[model.ShoppingItem], error) {
		items, err := h.items.List(c.Request().Context())
		if err != nil {
			return ListResponse[model.ShoppingItem]{}, err
		}
		return listOf(items), nil
	}, http.StatusOK, func() *NoRequest { return &NoRequest{} })
}

func (h *ItemHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *CreateItemRequest) (*model.ShoppingItem, error) {
		return h.items.Create(c.Request().Context(), req.fields())
	}, http.StatusCreated, func() *CreateItemRequest { return &CreateItemRequest{} })
}

func (h *ItemHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *ItemIDRequest) (*model.ShoppingItem, error) {
		return h.items.MustGetByID(c.Request().Context(), req.ID)
	}, http.StatusOK, func() *ItemIDRequest { return &ItemIDRequest{} })
}

func (h *ItemHandler) Update() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UpdateItemRequest) (AffectedResponse, error) {
		n, err := h.items.Update(c.Request().Context(), req.ID, req.fields())
		return AffectedResponse{Affected: n}, err
	}, http.StatusOK, func() *UpdateItemRequest { return &UpdateItemRequest{} })
}

func (h *ItemHandler) Delete() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *ItemIDRequest) (AffectedResponse, error) {
		n, err := h.items.Delete(c.Request().Context(), req.ID)
		return AffectedResponse{Affected: n}, err
	}, http.StatusOK, func() *ItemIDRequest { return &ItemIDRequest{} })
}
