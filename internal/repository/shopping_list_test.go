package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/shoplist/internal/model"
	"github.com/deppfellow/shoplist/internal/sqlerr"
)

func ptr[T any](v T) *T { return &v }

var itemRowColumns = []string{"id", "name", "price", "category", "date_added", "checked"}

func itemRow(id int64, name, price, category string, added time.Time, checked bool) []any {
	return []any{id, name, price, category, added, checked}
}

func TestShoppingListRepository_Statements(t *testing.T) {
	repo := NewShoppingListRepository()

	t.Run("get all", func(t *testing.T) {
		stmt, err := repo.getAllItemsStmt()
		require.NoError(t, err)
		assert.Equal(t,
			"SELECT id, name, price, category, date_added, checked FROM shopping_list ORDER BY id",
			stmt.sql,
		)
		assert.Empty(t, stmt.args)
	})

	t.Run("get by id", func(t *testing.T) {
		stmt, err := repo.getByIDStmt(42)
		require.NoError(t, err)
		assert.Equal(t,
			"SELECT id, name, price, category, date_added, checked FROM shopping_list WHERE id = $1 LIMIT 1",
			stmt.sql,
		)
		assert.Equal(t, []any{int64(42)}, stmt.args)
	})

	t.Run("insert binds supplied fields only", func(t *testing.T) {
		price := decimal.RequireFromString("14.12")
		stmt, err := repo.insertItemStmt(model.ItemFields{
			Name:     ptr("Test item"),
			Price:    &price,
			Category: ptr("Main"),
		})
		require.NoError(t, err)
		assert.Contains(t, stmt.sql, "INSERT INTO shopping_list (name,price,category) VALUES ($1,$2,$3)")
		assert.Contains(t, stmt.sql, "RETURNING id, name, price, category, date_added, checked")
		assert.Equal(t, []any{"Test item", price, "Main"}, stmt.args)
	})

	t.Run("insert with nothing uses defaults", func(t *testing.T) {
		stmt, err := repo.insertItemStmt(model.ItemFields{})
		require.NoError(t, err)
		assert.Equal(t,
			"INSERT INTO shopping_list DEFAULT VALUES RETURNING id, name, price, category, date_added, checked",
			stmt.sql,
		)
		assert.Empty(t, stmt.args)
	})

	t.Run("update", func(t *testing.T) {
		stmt, err := repo.updateItemStmt(7, model.ItemFields{Name: ptr("X"), Checked: ptr(true)})
		require.NoError(t, err)
		assert.Equal(t, "UPDATE shopping_list SET name = $1, checked = $2 WHERE id = $3", stmt.sql)
		assert.Equal(t, []any{"X", true, int64(7)}, stmt.args)
	})

	t.Run("update with nothing", func(t *testing.T) {
		_, err := repo.updateItemStmt(7, model.ItemFields{})
		assert.ErrorIs(t, err, ErrNoFields)
	})

	t.Run("delete", func(t *testing.T) {
		stmt, err := repo.deleteItemStmt(3)
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM shopping_list WHERE id = $1", stmt.sql)
		assert.Equal(t, []any{int64(3)}, stmt.args)
	})
}

func TestShoppingListRepository_GetAllItems(t *testing.T) {
	ctx := context.Background()
	repo := NewShoppingListRepository()
	added := time.Date(2019, 4, 3, 7, 0, 0, 0, time.UTC)

	t.Run("empty table", func(t *testing.T) {
		db := &fakeDB{columns: itemRowColumns}

		items, err := repo.GetAllItems(ctx, db)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("rows", func(t *testing.T) {
		db := &fakeDB{
			columns: itemRowColumns,
			rows: [][]any{
				itemRow(1, "Test item", "12.12", "Snack", added, false),
				itemRow(2, "Second item", "14.12", "Main", added, true),
			},
		}

		items, err := repo.GetAllItems(ctx, db)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(1), items[0].ID)
		assert.Equal(t, "Test item", items[0].Name)
		require.True(t, items[0].Price.Valid)
		assert.True(t, decimal.RequireFromString("12.12").Equal(items[0].Price.Decimal))
		assert.Equal(t, ptr("Snack"), items[0].Category)
		require.NotNil(t, items[0].DateAdded)
		assert.True(t, added.Equal(*items[0].DateAdded))
		assert.Equal(t, ptr(true), items[1].Checked)
	})

	t.Run("null columns", func(t *testing.T) {
		db := &fakeDB{
			columns: itemRowColumns,
			rows:    [][]any{{int64(1), "X", nil, nil, nil, nil}},
		}

		items, err := repo.GetAllItems(ctx, db)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "X", items[0].Name)
		assert.False(t, items[0].Price.Valid)
		assert.Nil(t, items[0].Category)
		assert.Nil(t, items[0].DateAdded)
		assert.Nil(t, items[0].Checked)
	})

	t.Run("store error", func(t *testing.T) {
		boom := errors.New("connection reset")
		db := &fakeDB{err: boom}

		_, err := repo.GetAllItems(ctx, db)
		assert.ErrorIs(t, err, boom)
	})
}

func TestShoppingListRepository_InsertItem(t *testing.T) {
	ctx := context.Background()
	repo := NewShoppingListRepository()

	t.Run("returns created row", func(t *testing.T) {
		added := time.Date(2019, 6, 3, 7, 0, 0, 0, time.UTC)
		db := &fakeDB{
			columns: itemRowColumns,
			rows:    [][]any{itemRow(1, "Test item", "14.12", "Main", added, false)},
		}

		price := decimal.RequireFromString("14.12")
		item, err := repo.InsertItem(ctx, db, model.ItemFields{
			Name:      ptr("Test item"),
			Price:     &price,
			Category:  ptr("Main"),
			DateAdded: &added,
			Checked:   ptr(false),
		})
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, int64(1), item.ID)
		assert.Equal(t, "Test item", item.Name)
		require.Len(t, db.queries, 1)
	})

	t.Run("name only reads back nulls and defaults", func(t *testing.T) {
		added := time.Date(2019, 6, 3, 7, 0, 0, 0, time.UTC)
		db := &fakeDB{
			columns: itemRowColumns,
			rows:    [][]any{{int64(1), "X", nil, nil, added, false}},
		}

		item, err := repo.InsertItem(ctx, db, model.ItemFields{Name: ptr("X")})
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "X", item.Name)
		assert.False(t, item.Price.Valid)
		assert.Nil(t, item.Category)
		assert.Equal(t, ptr(false), item.Checked)
		assert.Equal(t, []any{"X"}, db.args[0])
	})

	t.Run("not null violation keeps driver error", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Severity:   "ERROR",
			Code:       "23502",
			Message:    `null value in column "name" of relation "shopping_list" violates not-null constraint`,
			TableName:  "shopping_list",
			ColumnName: "name",
		}
		db := &fakeDB{err: pgErr}

		item, err := repo.InsertItem(ctx, db, model.ItemFields{Category: ptr("Main")})
		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "not-null")
		assert.True(t, sqlerr.IsNotNullViolation(err))
	})
}

func TestShoppingListRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewShoppingListRepository()

	t.Run("absent", func(t *testing.T) {
		db := &fakeDB{columns: itemRowColumns}

		item, err := repo.GetByID(ctx, db, 999)
		require.NoError(t, err)
		assert.Nil(t, item)
		assert.Equal(t, []any{int64(999)}, db.args[0])
	})

	t.Run("present", func(t *testing.T) {
		db := &fakeDB{
			columns: itemRowColumns,
			rows:    [][]any{itemRow(3, "Third", "1.00", "Lunch", time.Now(), false)},
		}

		item, err := repo.GetByID(ctx, db, 3)
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Third", item.Name)
	})
}

func TestShoppingListRepository_DeleteAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewShoppingListRepository()

	t.Run("delete missing", func(t *testing.T) {
		db := &fakeDB{tag: "DELETE 0"}
		n, err := repo.DeleteItem(ctx, db, 999)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("delete present", func(t *testing.T) {
		db := &fakeDB{tag: "DELETE 1"}
		n, err := repo.DeleteItem(ctx, db, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("update present", func(t *testing.T) {
		db := &fakeDB{tag: "UPDATE 1"}
		n, err := repo.UpdateItem(ctx, db, 1, model.ItemFields{Name: ptr("New name!")})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("update without fields never reaches the store", func(t *testing.T) {
		db := &fakeDB{tag: "UPDATE 1"}
		n, err := repo.UpdateItem(ctx, db, 1, model.ItemFields{})
		assert.ErrorIs(t, err, ErrNoFields)
		assert.Zero(t, n)
		assert.Empty(t, db.queries)
	})
}
