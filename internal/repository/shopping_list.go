package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/shoplist/internal/model"
)

// ShoppingListTable is the table every statement in this file targets.
const ShoppingListTable = "shopping_list"

// ErrNoFields is returned by UpdateItem when the field set is empty.
var ErrNoFields = errors.New("no fields to update")

// itemColumns lists shopping_list columns in table order. Selects and
// RETURNING clauses use it so rows map onto model.ShoppingItem by name.
var itemColumns = []string{"id", "name", "price", "category", "date_added", "checked"}

var returningItem = "RETURNING " + strings.Join(itemColumns, ", ")

// ShoppingListRepository runs CRUD statements against shopping_list.
type ShoppingListRepository struct{}

// NewShoppingListRepository returns a ShoppingListRepository.
func NewShoppingListRepository() *ShoppingListRepository {
	return &ShoppingListRepository{}
}

func (r *ShoppingListRepository) getAllItemsStmt() (statement, error) {
	return render(psql.Select(itemColumns...).
		From(ShoppingListTable).
		OrderBy("id"))
}

func (r *ShoppingListRepository) insertItemStmt(fields model.ItemFields) (statement, error) {
	columns, values := fields.Columns()

	// Nothing supplied: let every column take its default so the store
	// decides whether the row is acceptable (it is not, name is NOT NULL).
	if len(columns) == 0 {
		return statement{
			sql: fmt.Sprintf("INSERT INTO %s DEFAULT VALUES %s", ShoppingListTable, returningItem),
		}, nil
	}

	return render(psql.Insert(ShoppingListTable).
		Columns(columns...).
		Values(values...).
		Suffix(returningItem))
}

func (r *ShoppingListRepository) getByIDStmt(id int64) (statement, error) {
	return render(psql.Select(itemColumns...).
		From(ShoppingListTable).
		Where(sq.Eq{"id": id}).
		Limit(1))
}

func (r *ShoppingListRepository) deleteItemStmt(id int64) (statement, error) {
	return render(psql.Delete(ShoppingListTable).
		Where(sq.Eq{"id": id}))
}

func (r *ShoppingListRepository) updateItemStmt(id int64, fields model.ItemFields) (statement, error) {
	columns, values := fields.Columns()
	if len(columns) == 0 {
		return statement{}, ErrNoFields
	}

	update := psql.Update(ShoppingListTable)
	for i, column := range columns {
		update = update.Set(column, values[i])
	}

	return render(update.Where(sq.Eq{"id": id}))
}

// GetAllItems returns every row ordered by id, which is insertion order.
// An empty table yields an empty slice.
func (r *ShoppingListRepository) GetAllItems(ctx context.Context, db DBTX) ([]model.ShoppingItem, error) {
	stmt, err := r.getAllItemsStmt()
	if err != nil {
		return nil, fmt.Errorf("build select items: %w", err)
	}

	rows, err := db.Query(ctx, stmt.sql, stmt.args...)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ShoppingItem])
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	return items, nil
}

// InsertItem inserts a single row and returns it as stored, with the id
// and column defaults filled in.
//
// A missing name is rejected by the store. The driver error is wrapped, so
// both its message ("... violates not-null constraint") and its SQLSTATE
// (sqlerr.IsNotNullViolation) reach the caller.
func (r *ShoppingListRepository) InsertItem(ctx context.Context, db DBTX, fields model.ItemFields) (*model.ShoppingItem, error) {
	stmt, err := r.insertItemStmt(fields)
	if err != nil {
		return nil, fmt.Errorf("build insert item: %w", err)
	}

	rows, err := db.Query(ctx, stmt.sql, stmt.args...)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ShoppingItem])
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return &item, nil
}

// GetByID returns the row with the given id, or (nil, nil) when there is
// none. A missing row is not an error.
func (r *ShoppingListRepository) GetByID(ctx context.Context, db DBTX, id int64) (*model.ShoppingItem, error) {
	stmt, err := r.getByIDStmt(id)
	if err != nil {
		return nil, fmt.Errorf("build select item: %w", err)
	}

	rows, err := db.Query(ctx, stmt.sql, stmt.args...)
	if err != nil {
		return nil, fmt.Errorf("select item %d: %w", id, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ShoppingItem])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select item %d: %w", id, err)
	}
	return &item, nil
}

// DeleteItem removes the row with the given id and returns how many rows
// were deleted: 1, or 0 when the id does not exist.
func (r *ShoppingListRepository) DeleteItem(ctx context.Context, db DBTX, id int64) (int64, error) {
	stmt, err := r.deleteItemStmt(id)
	if err != nil {
		return 0, fmt.Errorf("build delete item: %w", err)
	}

	tag, err := db.Exec(ctx, stmt.sql, stmt.args...)
	if err != nil {
		return 0, fmt.Errorf("delete item %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

// UpdateItem writes the supplied fields to the row with the given id and
// returns how many rows changed (0 or 1). There is no concurrency check:
// the last writer wins.
func (r *ShoppingListRepository) UpdateItem(ctx context.Context, db DBTX, id int64, fields model.ItemFields) (int64, error) {
	stmt, err := r.updateItemStmt(id, fields)
	if err != nil {
		if errors.Is(err, ErrNoFields) {
			return 0, err
		}
		return 0, fmt.Errorf("build update item: %w", err)
	}

	tag, err := db.Exec(ctx, stmt.sql, stmt.args...)
	if err != nil {
		return 0, fmt.Errorf("update item %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}
