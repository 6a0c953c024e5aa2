package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/deppfellow/shoplist/internal/errs"
	"github.com/deppfellow/shoplist/internal/model"
	"github.com/deppfellow/shoplist/internal/repository"
	"github.com/deppfellow/shoplist/internal/server"
)

// ShoppingListStore is the CRUD surface of repository.ShoppingListRepository.
type ShoppingListStore interface {
	GetAllItems(ctx context.Context, db repository.DBTX) ([]model.ShoppingItem, error)
	InsertItem(ctx context.Context, db repository.DBTX, fields model.ItemFields) (*model.ShoppingItem, error)
	GetByID(ctx context.Context, db repository.DBTX, id int64) (*model.ShoppingItem, error)
	DeleteItem(ctx context.Context, db repository.DBTX, id int64) (int64, error)
	UpdateItem(ctx context.Context, db repository.DBTX, id int64, fields model.ItemFields) (int64, error)
}

// ShoppingListService runs shopping list CRUD on one connection handle.
type ShoppingListService struct {
	db     repository.DBTX
	repo   ShoppingListStore
	logger *zerolog.Logger
}

// NewShoppingListService binds repo to the server's connection pool.
func NewShoppingListService(s *server.Server, repo ShoppingListStore) *ShoppingListService {
	return &ShoppingListService{
		db:     s.DB.Pool,
		repo:   repo,
		logger: s.Logger,
	}
}

func (s *ShoppingListService) List(ctx context.Context) ([]model.ShoppingItem, error) {
	return s.repo.GetAllItems(ctx, s.db)
}

// Create inserts one item and returns it as stored.
func (s *ShoppingListService) Create(ctx context.Context, fields model.ItemFields) (*model.ShoppingItem, error) {
	item, err := s.repo.InsertItem(ctx, s.db, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("item_id", item.ID).
		Str("category", model.CategoryName(item.Category)).
		Msg("shopping item created")
	return item, nil
}

// GetByID returns the item or (nil, nil) when it does not exist.
func (s *ShoppingListService) GetByID(ctx context.Context, id int64) (*model.ShoppingItem, error) {
	return s.repo.GetByID(ctx, s.db, id)
}

// MustGetByID is GetByID for HTTP callers: a missing item is a 404.
func (s *ShoppingListService) MustGetByID(ctx context.Context, id int64) (*model.ShoppingItem, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		code := "SHOPPING_ITEM_NOT_FOUND"
		return nil, errs.NewNotFoundError("Shopping item "+strconv.FormatInt(id, 10)+" not found", true, &code)
	}
	return item, nil
}

// Update writes fields to item id and returns the affected row count. An
// empty field set is a 400.
func (s *ShoppingListService) Update(ctx context.Context, id int64, fields model.ItemFields) (int64, error) {
	n, err := s.repo.UpdateItem(ctx, s.db, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNoFields) {
			code := "SHOPPING_ITEM_NO_FIELDS"
			return 0, errs.NewBadRequestError("At least one field must be supplied", true, &code, nil, nil)
		}
		return 0, err
	}

	s.logger.Info().Int64("item_id", id).Int64("affected", n).Msg("shopping item updated")
	return n, nil
}

// Delete removes item id and returns the affected row count.
func (s *ShoppingListService) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.DeleteItem(ctx, s.db, id)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("item_id", id).Int64("affected", n).Msg("shopping item deleted")
	return n, nil
}
