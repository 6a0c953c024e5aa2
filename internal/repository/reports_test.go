package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageOffset(t *testing.T) {
	tests := []struct {
		page, size, want int
	}{
		{page: 1, size: 6, want: 0},
		{page: 2, size: 6, want: 6},
		{page: 3, size: 10, want: 20},
		{page: 0, size: 6, want: -6},
		{page: -1, size: 6, want: -12},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PageOffset(tt.page, tt.size), "page %d size %d", tt.page, tt.size)
	}
}

func TestReportRepository_Statements(t *testing.T) {
	repo := NewReportRepository()

	t.Run("search binds the pattern", func(t *testing.T) {
		stmt, err := repo.searchByNameStmt("fish")
		require.NoError(t, err)
		assert.Equal(t, "SELECT name FROM shopping_list WHERE name ILIKE $1 ORDER BY id", stmt.sql)
		assert.Equal(t, []any{"%fish%"}, stmt.args)
	})

	t.Run("search never inlines the term", func(t *testing.T) {
		term := "x'; DROP TABLE shopping_list; --"
		stmt, err := repo.searchByNameStmt(term)
		require.NoError(t, err)
		assert.NotContains(t, stmt.sql, "DROP TABLE")
		assert.Equal(t, []any{"%" + term + "%"}, stmt.args)
	})

	t.Run("paginate", func(t *testing.T) {
		stmt, err := repo.paginateStmt(2, DefaultPageSize)
		require.NoError(t, err)
		assert.Contains(t, stmt.sql, "FROM shopping_list ORDER BY id LIMIT $1 OFFSET $2")
		assert.Equal(t, []any{6, 6}, stmt.args)
	})

	t.Run("paginate falls back to the default size", func(t *testing.T) {
		stmt, err := repo.paginateStmt(1, 0)
		require.NoError(t, err)
		assert.Equal(t, []any{DefaultPageSize, 0}, stmt.args)
	})

	t.Run("paginate keeps negative offsets", func(t *testing.T) {
		stmt, err := repo.paginateStmt(0, 6)
		require.NoError(t, err)
		assert.Equal(t, []any{6, -6}, stmt.args)
	})

	t.Run("items after date", func(t *testing.T) {
		stmt, err := repo.itemsAfterDateStmt(3)
		require.NoError(t, err)
		assert.Equal(t,
			"SELECT name, price, category, date_added FROM shopping_list WHERE date_added > now() - make_interval(days => $1) ORDER BY date_added",
			stmt.sql,
		)
		assert.Equal(t, []any{3}, stmt.args)
	})

	t.Run("totals", func(t *testing.T) {
		stmt, err := repo.totalCostByCategoryStmt()
		require.NoError(t, err)
		assert.Equal(t,
			"SELECT category, SUM(price) AS total_cost FROM shopping_list GROUP BY category ORDER BY MIN(id)",
			stmt.sql,
		)
		assert.Empty(t, stmt.args)
	})
}

func TestReportRepository_Queries(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepository()

	t.Run("search", func(t *testing.T) {
		db := &fakeDB{
			columns: []string{"name"},
			rows:    [][]any{{"Fish sticks"}, {"Swordfish"}},
		}

		names, err := repo.SearchByName(ctx, db, "fish")
		require.NoError(t, err)
		require.Len(t, names, 2)
		assert.Equal(t, "Fish sticks", names[0].Name)
		assert.Equal(t, "Swordfish", names[1].Name)
	})

	t.Run("search without matches", func(t *testing.T) {
		db := &fakeDB{columns: []string{"name"}}

		names, err := repo.SearchByName(ctx, db, "cheese")
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("paginate", func(t *testing.T) {
		added := time.Date(2019, 6, 3, 7, 0, 0, 0, time.UTC)
		db := &fakeDB{
			columns: itemRowColumns,
			rows: [][]any{
				itemRow(7, "Seventh", "1.00", "Snack", added, false),
			},
		}

		items, err := repo.Paginate(ctx, db, 2, 6)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(7), items[0].ID)
		assert.Equal(t, []any{6, 6}, db.args[0])
	})

	t.Run("recent", func(t *testing.T) {
		added := time.Now().UTC().Add(-24 * time.Hour)
		db := &fakeDB{
			columns: []string{"name", "price", "category", "date_added"},
			rows:    [][]any{{"Test item", "14.12", "Main", added}},
		}

		items, err := repo.ItemsAfterDate(ctx, db, 3)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Test item", items[0].Name)
		assert.True(t, decimal.RequireFromString("14.12").Equal(items[0].Price.Decimal))
		assert.Equal(t, ptr("Main"), items[0].Category)
		assert.True(t, added.Equal(items[0].DateAdded))
	})

	t.Run("recent with null price and category", func(t *testing.T) {
		db := &fakeDB{
			columns: []string{"name", "price", "category", "date_added"},
			rows:    [][]any{{"X", nil, nil, time.Now().UTC()}},
		}

		items, err := repo.ItemsAfterDate(ctx, db, 3)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.False(t, items[0].Price.Valid)
		assert.Nil(t, items[0].Category)
	})

	t.Run("totals", func(t *testing.T) {
		db := &fakeDB{
			columns: []string{"category", "total_cost"},
			rows:    [][]any{{"Snack", "12.12"}, {"Main", "14.12"}},
		}

		totals, err := repo.TotalCostByCategory(ctx, db)
		require.NoError(t, err)
		require.Len(t, totals, 2)
		assert.Equal(t, ptr("Snack"), totals[0].Category)
		assert.True(t, decimal.RequireFromString("12.12").Equal(totals[0].TotalCost.Decimal))
		assert.Equal(t, ptr("Main"), totals[1].Category)
		assert.True(t, decimal.RequireFromString("14.12").Equal(totals[1].TotalCost.Decimal))
	})

	t.Run("totals with a null category group", func(t *testing.T) {
		db := &fakeDB{
			columns: []string{"category", "total_cost"},
			rows:    [][]any{{"Snack", "12.12"}, {nil, nil}},
		}

		totals, err := repo.TotalCostByCategory(ctx, db)
		require.NoError(t, err)
		require.Len(t, totals, 2)
		assert.Nil(t, totals[1].Category)
		assert.Equal(t, "Uncategorized", totals[1].CategoryName())
		assert.False(t, totals[1].TotalCost.Valid)
	})

	t.Run("store error is wrapped", func(t *testing.T) {
		boom := errors.New("relation does not exist")
		db := &fakeDB{err: boom}

		_, err := repo.TotalCostByCategory(ctx, db)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "category totals")
	})
}
