package handler

import (
	"github.com/deppfellow/shoplist/internal/server"
	"github.com/deppfellow/shoplist/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health  *HealthHandler
	Items   *ItemHandler
	Reports *ReportHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		Items:   NewItemHandler(s, services.ShoppingList),
		Reports: NewReportHandler(s, services.Reports),
	}
}
