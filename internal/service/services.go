package service

import (
	"github.com/deppfellow/shoplist/internal/repository"
	"github.com/deppfellow/shoplist/internal/server"
)

// Services groups every service so handlers receive one value.
type Services struct {
	Auth         *AuthService
	ShoppingList *ShoppingListService
	Reports      *ReportService
}

// NewServices wires the services to the server's pool and the repositories.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Auth:         NewAuthService(s),
		ShoppingList: NewShoppingListService(s, repos.ShoppingList),
		Reports:      NewReportService(s, repos.Reports),
	}
}
